package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/delivery/http/validator"
	"roster/internal/domain/entity"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUsecase is a function-backed test double for usecase.UserUsecase.
type stubUserUsecase struct {
	signupFn func(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error)
	loginFn  func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error)
}

func (s *stubUserUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	return s.signupFn(ctx, input)
}

func (s *stubUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.loginFn(ctx, input)
}

// stubSessionUsecase is a function-backed test double for usecase.SessionUsecase.
type stubSessionUsecase struct {
	authenticateFn func(ctx context.Context, rawToken string) (uuid.UUID, error)
	logoutFn       func(ctx context.Context, userID uuid.UUID, rawToken string) error
	logoutAllFn    func(ctx context.Context, userID uuid.UUID) error
}

func (s *stubSessionUsecase) Authenticate(ctx context.Context, rawToken string) (uuid.UUID, error) {
	return s.authenticateFn(ctx, rawToken)
}

func (s *stubSessionUsecase) Logout(ctx context.Context, userID uuid.UUID, rawToken string) error {
	return s.logoutFn(ctx, userID, rawToken)
}

func (s *stubSessionUsecase) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	return s.logoutAllFn(ctx, userID)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserHandler_Signup_Success(t *testing.T) {
	userID := uuid.New()
	userUC := &stubUserUsecase{
		signupFn: func(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
			return &usecase.AuthOutput{
				User: &entity.User{
					ID:           userID,
					Email:        "adrian@example.com",
					Name:         "Adrian",
					PasswordHash: "secret_hash",
				},
				Token: "issued-token",
			}, nil
		},
	}
	h := NewUserHandler(userUC, &stubSessionUsecase{}, discardLogger())

	e := newTestEcho()
	body := `{"name":"Adrian","email":"adrian@example.com","password":"MyPass777!"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "issued-token")
	assert.Contains(t, responseBody, "adrian@example.com")
	assert.Contains(t, responseBody, userID.String())

	// Credentials must never leak through the response DTO.
	assert.NotContains(t, responseBody, "secret_hash")
}

func TestUserHandler_Signup_MissingEmail(t *testing.T) {
	userUC := &stubUserUsecase{
		signupFn: func(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
			t.Fatal("usecase must not be reached on invalid input")
			return nil, nil
		},
	}
	h := NewUserHandler(userUC, &stubSessionUsecase{}, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Adrian","password":"MyPass777!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)

	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_Login_EmptyBody(t *testing.T) {
	userUC := &stubUserUsecase{
		loginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
			t.Fatal("usecase must not be reached on invalid input")
			return nil, nil
		},
	}
	h := NewUserHandler(userUC, &stubSessionUsecase{}, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)

	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_Login_Success(t *testing.T) {
	userUC := &stubUserUsecase{
		loginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
			assert.Equal(t, "adrian@example.com", input.Email)

			return &usecase.AuthOutput{
				User:  &entity.User{ID: uuid.New(), Email: input.Email, Name: "Adrian"},
				Token: "fresh-token",
			}, nil
		},
	}
	h := NewUserHandler(userUC, &stubSessionUsecase{}, discardLogger())

	e := newTestEcho()
	body := `{"email":"adrian@example.com","password":"MyPass777!"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fresh-token")
}

func TestUserHandler_Logout_RevokesPresentedToken(t *testing.T) {
	userID := uuid.New()
	var gotUserID uuid.UUID
	var gotToken string

	sessionUC := &stubSessionUsecase{
		logoutFn: func(ctx context.Context, id uuid.UUID, rawToken string) error {
			gotUserID = id
			gotToken = rawToken

			return nil
		},
	}
	h := NewUserHandler(&stubUserUsecase{}, sessionUC, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetUserID(c, userID)
	deliverycontext.SetToken(c, "presented-token")

	err := h.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, "presented-token", gotToken)
}

func TestUserHandler_LogoutAll(t *testing.T) {
	userID := uuid.New()
	called := false

	sessionUC := &stubSessionUsecase{
		logoutAllFn: func(ctx context.Context, id uuid.UUID) error {
			called = true
			assert.Equal(t, userID, id)

			return nil
		},
	}
	h := NewUserHandler(&stubUserUsecase{}, sessionUC, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/users/logoutAll", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetUserID(c, userID)

	err := h.LogoutAll(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestUserHandler_Signup_UsecaseError(t *testing.T) {
	wantErr := errors.New("boom")
	userUC := &stubUserUsecase{
		signupFn: func(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
			return nil, wantErr
		},
	}
	h := NewUserHandler(userUC, &stubSessionUsecase{}, discardLogger())

	e := newTestEcho()
	body := `{"name":"Adrian","email":"adrian@example.com","password":"MyPass777!"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
