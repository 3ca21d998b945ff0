package weddingplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeline(t *testing.T) {
	timeline := GenerateTimeline()

	require.Len(t, timeline, 6)
	for _, key := range []string{"12_months_before", "8_months_before", "6_months_before", "3_months_before", "1_month_before", "1_week_before"} {
		assert.Len(t, timeline[key], 3, key)
	}
	assert.Equal(t, []string{"Book venue", "Set budget", "Create guest list"}, timeline["12_months_before"])
	assert.Equal(t, "Relax and enjoy!", timeline["1_week_before"][2])
}

func TestGenerateTimeline_ReturnsIndependentCopies(t *testing.T) {
	first := GenerateTimeline()
	first["12_months_before"][0] = "changed"
	delete(first, "1_week_before")

	second := GenerateTimeline()
	assert.Equal(t, "Book venue", second["12_months_before"][0])
	assert.Contains(t, second, "1_week_before")
}
