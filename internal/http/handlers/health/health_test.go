package health

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CheckerMock struct {
	mock.Mock
}

func (m *CheckerMock) CheckDatabaseReady(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		checkErr       error
		wantStatusCode int
		wantStatus     string
		wantError      string
	}{
		{
			name:           "database ready",
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "database not ready",
			checkErr:       errors.New("required table subscriptions missing or query error"),
			wantStatusCode: http.StatusServiceUnavailable,
			wantStatus:     "Error",
			wantError:      "database is not ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkerMock := new(CheckerMock)
			checkerMock.On("CheckDatabaseReady", mock.Anything).Return(tt.checkErr).Once()

			handler := New(newNoopLogger(), checkerMock)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			} else {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "ok", data["status"])
			}

			checkerMock.AssertExpectations(t)
		})
	}
}
