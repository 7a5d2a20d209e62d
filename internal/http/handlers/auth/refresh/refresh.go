// Package refresh реализует HTTP-обработчик обновления access-токена.
//
// Handler принимает refresh-токен в заголовке Authorization и выдает новый
// access-токен. Отсутствие заголовка — 403, токен не того вида или
// невалидный — 401.
package refresh

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-helper/internal/http/response"
	"github.com/magabrotheeeer/gym-helper/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики обновления токена.
type Service interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// Handler управляет HTTP-запросами на обновление access-токена.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить access-токен
// @Description Принимает refresh-токен в заголовке Authorization и возвращает новый access-токен.
// @Tags Auth
// @Produce  json
// @Param Authorization header string true "Bearer refresh-токен"
// @Success 200 {object} map[string]any "Новый access-токен"
// @Failure 401 {object} response.ErrorResponse "Невалидный токен или токен не того вида"
// @Failure 403 {object} response.ErrorResponse "Отсутствует заголовок Authorization"
// @Router /auth/refresh_token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		log.Error("missing or invalid authorization header")
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("missing or invalid authorization header"))
		return
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := h.service.Refresh(r.Context(), tokenStr)
	if err != nil {
		log.Error("failed to refresh token", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid refresh token"))
		return
	}

	log.Info("success to refresh token")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
	}))
}
