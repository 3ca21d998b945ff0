package user

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/api"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, params types.CreateUserParams) (*types.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]types.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.User), args.Error(1)
}

func setupHandlerTest() (*HandlerImpl, *MockUserService) {
	svc := new(MockUserService)
	return NewHandlerImpl(svc, slog.New(slog.NewTextHandler(io.Discard, nil))), svc
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandlerImpl_CreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, svc := setupHandlerTest()
		created := &types.User{ID: uuid.New(), Name: "Asha", Role: types.RoleCustomer}
		svc.On("CreateUser", mock.Anything, types.CreateUserParams{Name: "Asha", Email: "a@example.com", Phone: "1"}).
			Return(created, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Asha","email":"a@example.com","phone":"1"}`))
		rr := httptest.NewRecorder()
		h.CreateUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got types.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("unknown field", func(t *testing.T) {
		h, svc := setupHandlerTest()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Asha","nickname":"A"}`))
		rr := httptest.NewRecorder()
		h.CreateUser(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("validation error from service", func(t *testing.T) {
		h, svc := setupHandlerTest()
		svc.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, &validationErr{}).Once()

		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Asha"}`))
		rr := httptest.NewRecorder()
		h.CreateUser(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp api.Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "email is required", resp.Error)
	})
}

type validationErr struct{}

func (validationErr) Error() string { return "validation failed: email is required" }
func (validationErr) Unwrap() error { return types.ErrValidation }

func TestHandlerImpl_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, svc := setupHandlerTest()
		id := uuid.New()
		svc.On("GetUser", mock.Anything, id).Return(&types.User{ID: id}, nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+id.String(), nil), "id", id.String())
		rr := httptest.NewRecorder()
		h.GetUser(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h, svc := setupHandlerTest()
		id := uuid.New()
		svc.On("GetUser", mock.Anything, id).Return(nil, types.ErrNotFound).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+id.String(), nil), "id", id.String())
		rr := httptest.NewRecorder()
		h.GetUser(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "User not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		h, svc := setupHandlerTest()
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/nope", nil), "id", "nope")
		rr := httptest.NewRecorder()
		h.GetUser(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
	})
}

func TestHandlerImpl_ListUsers(t *testing.T) {
	h, svc := setupHandlerTest()
	svc.On("ListUsers", mock.Anything).Return([]types.User{}, nil).Once()

	rr := httptest.NewRecorder()
	h.ListUsers(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
