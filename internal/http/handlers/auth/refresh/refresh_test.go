package refresh

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/gym-helper/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRefreshHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		mockToken      string
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantError      string
		wantStatus     string
	}{
		{
			name:           "valid refresh",
			authHeader:     "Bearer valid-refresh-token",
			mockToken:      "new-access-token",
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "missing authorization header",
			authHeader:     "",
			wantStatusCode: http.StatusForbidden,
			wantError:      "missing or invalid authorization header",
			wantStatus:     "Error",
		},
		{
			name:           "header without bearer prefix",
			authHeader:     "token-without-prefix",
			wantStatusCode: http.StatusForbidden,
			wantError:      "missing or invalid authorization header",
			wantStatus:     "Error",
		},
		{
			name:           "access token instead of refresh",
			authHeader:     "Bearer access-token",
			mockErr:        auth.ErrInvalidTokenKind,
			mockCalled:     true,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid refresh token",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.mockCalled {
				serviceMock.On("Refresh", mock.Anything, mock.AnythingOfType("string")).
					Return(tt.mockToken, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/refresh_token", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, tt.mockToken, data["token"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
