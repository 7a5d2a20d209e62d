// Package disciplineactivate реализует HTTP-обработчик возврата дисциплины
// в активное состояние.
package disciplineactivate

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-helper/internal/http/response"
	"github.com/magabrotheeeer/gym-helper/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики активации дисциплины.
type Service interface {
	ActivateDiscipline(ctx context.Context, id int64) (int, error)
}

// Handler управляет HTTP-запросами на активацию дисциплин.
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
// @Summary Активировать дисциплину
// @Description Снимает пометку удаления с дисциплины. Доступно только роли Admin.
// @Tags Memberships
// @Produce  json
// @Param id path int true "ID дисциплины"
// @Success 200 {object} map[string]any "Дисциплина активирована"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Дисциплина не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /membership/discipline/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.disciplineactivate"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	count, err := h.service.ActivateDiscipline(r.Context(), id)
	if err != nil {
		log.Error("failed to activate discipline", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to activate discipline"))
		return
	}
	if count == 0 {
		log.Error("discipline not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("discipline not found"))
		return
	}

	log.Info("success to activate discipline", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"activated_id": id,
	}))
}
