package middlewarectx

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	jwtlib "github.com/magabrotheeeer/gym-helper/internal/lib/jwt"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) ValidateAccessToken(token string) (*jwtlib.CustomClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*jwtlib.CustomClaims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	validClaims := &jwtlib.CustomClaims{
		UserID:  42,
		UserUID: "uid-42",
		Role:    "Trainer",
		Kind:    jwtlib.KindAccess,
	}
	validClaims.Subject = "trainer1"

	tests := []struct {
		name           string
		authHeader     string
		mockClaims     *jwtlib.CustomClaims
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantNextCalled bool
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			mockClaims:     validClaims,
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "missing header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "header without bearer prefix",
			authHeader:     "some-token",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer bad-token",
			mockErr:        errors.New("token is invalid"),
			mockCalled:     true,
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			if tt.mockCalled {
				serviceMock.On("ValidateAccessToken", mock.AnythingOfType("string")).
					Return(tt.mockClaims, tt.mockErr).Once()
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, "trainer1", r.Context().Value(User))
				assert.Equal(t, "Trainer", r.Context().Value(Role))
				assert.Equal(t, "uid-42", r.Context().Value(UserUID))
				assert.Equal(t, int64(42), r.Context().Value(UserID))
				w.WriteHeader(http.StatusOK)
			})

			handler := JWTMiddleware(serviceMock, newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/clients", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			serviceMock.AssertExpectations(t)
		})
	}
}
