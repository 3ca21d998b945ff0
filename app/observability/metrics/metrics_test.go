package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_InitializesOnce(t *testing.T) {
	m := Get()
	require.NotNil(t, m)
	assert.Same(t, m, Get())

	assert.NotPanics(t, func() {
		m.ChatMessagesTotal.Add(context.Background(), 1)
		m.LLMRequestDuration.Record(context.Background(), 0.25)
		m.DbQueryErrorsTotal.Add(context.Background(), 1)
		m.ObserveQuery(context.Background(), "SelectUser", time.Now(), nil)
		m.ObserveQuery(context.Background(), "SelectUser", time.Now(), errors.New("boom"))
	})
}
