package weddingplan

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

func TestHandlerImpl_CreateWeddingPlan(t *testing.T) {
	svc, _, users := setupPlanServiceTest()
	h := NewHandlerImpl(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	userID := uuid.New()
	users.On("GetUserByID", mock.Anything, userID).Return(nil, types.ErrNotFound).Once()

	body := `{"user_id":"` + userID.String() + `","budget":100000,"guest_count":50,"wedding_date":"2027-05-01T00:00:00Z","location":"Pune","style_preference":"fusion"}`
	rr := httptest.NewRecorder()
	h.CreateWeddingPlan(rr, httptest.NewRequest(http.MethodPost, "/wedding-plans", strings.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "User not found")
}

func TestHandlerImpl_CreateWeddingPlan_DateFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339 with offset", "2026-04-12T10:20:30+05:30", time.Date(2026, 4, 12, 4, 50, 30, 0, time.UTC)},
		{"zone-less iso timestamp", "2026-04-12T10:20:30.123456", time.Date(2026, 4, 12, 10, 20, 30, 123456000, time.UTC)},
		{"calendar date", "2026-04-12", time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, users := setupPlanServiceTest()
			h := NewHandlerImpl(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
			userID := uuid.New()
			users.On("GetUserByID", mock.Anything, userID).Return(&types.User{ID: userID}, nil).Once()
			repo.On("CreatePlan", mock.Anything, mock.MatchedBy(func(p *types.WeddingPlan) bool {
				return p.WeddingDate.Equal(tt.want)
			})).Return(nil).Once()
			users.On("UpdatePreferences", mock.Anything, userID, mock.Anything).Return(nil).Once()

			body := `{"user_id":"` + userID.String() + `","budget":100000,"guest_count":50,"wedding_date":"` + tt.input + `","location":"Pune"}`
			rr := httptest.NewRecorder()
			h.CreateWeddingPlan(rr, httptest.NewRequest(http.MethodPost, "/wedding-plans", strings.NewReader(body)))

			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			var plan types.WeddingPlan
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
			assert.True(t, plan.WeddingDate.Equal(tt.want))
			repo.AssertExpectations(t)
		})
	}
}

func TestHandlerImpl_CreateWeddingPlan_BadDate(t *testing.T) {
	svc, _, _ := setupPlanServiceTest()
	h := NewHandlerImpl(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"user_id":"` + uuid.NewString() + `","wedding_date":"next spring","location":"Pune"}`
	rr := httptest.NewRecorder()
	h.CreateWeddingPlan(rr, httptest.NewRequest(http.MethodPost, "/wedding-plans", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid date")
}

func TestHandlerImpl_CreateWeddingPlan_MissingDate(t *testing.T) {
	svc, _, _ := setupPlanServiceTest()
	h := NewHandlerImpl(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"user_id":"` + uuid.NewString() + `","budget":100000,"location":"Pune"}`
	rr := httptest.NewRecorder()
	h.CreateWeddingPlan(rr, httptest.NewRequest(http.MethodPost, "/wedding-plans", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "wedding_date is required")
}

func TestHandlerImpl_ListWeddingPlans_BadID(t *testing.T) {
	svc, _, _ := setupPlanServiceTest()
	h := NewHandlerImpl(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("user_id", "not-a-uuid")
	req := httptest.NewRequest(http.MethodGet, "/wedding-plans/not-a-uuid", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()
	h.ListWeddingPlans(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
