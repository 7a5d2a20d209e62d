package middlewarectx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/gym-helper/internal/models"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		ctxRole        any
		required       []models.Role
		wantStatusCode int
		wantNextCalled bool
	}{
		{
			name:           "admin allowed for admin-only",
			ctxRole:        "Admin",
			required:       []models.Role{models.RoleAdmin},
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "trainer denied for admin-only",
			ctxRole:        "Trainer",
			required:       []models.Role{models.RoleAdmin},
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "trainer allowed for trainer or admin",
			ctxRole:        "Trainer",
			required:       []models.Role{models.RoleTrainer, models.RoleAdmin},
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "unknown role denied",
			ctxRole:        "Manager",
			required:       []models.Role{models.RoleAdmin},
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "missing role in context",
			ctxRole:        nil,
			required:       []models.Role{models.RoleAdmin},
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := RequireRole(newNoopLogger(), tt.required...)(next)

			req := httptest.NewRequest(http.MethodPost, "/membership/discipline", nil)
			if tt.ctxRole != nil {
				req = req.WithContext(context.WithValue(req.Context(), Role, tt.ctxRole))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
		})
	}
}
