// Package membershipremove реализует HTTP-обработчик мягкого удаления абонемента.
package membershipremove

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

// Service описывает интерфейс бизнес-логики удаления абонемента.
type Service interface {
	RemoveMembership(ctx context.Context, id int64) (int, error)
}

// Handler управляет HTTP-запросами на удаление абонементов.
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
// @Summary Удалить абонемент
// @Description Мягко удаляет абонемент из каталога. Доступно только роли Admin.
// @Tags Memberships
// @Produce  json
// @Param id path int true "ID абонемента"
// @Success 200 {object} map[string]any "Абонемент удален"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Абонемент не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /membership/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.membershipremove"

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

	count, err := h.service.RemoveMembership(r.Context(), id)
	if err != nil {
		log.Error("failed to delete membership", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete membership"))
		return
	}
	if count == 0 {
		log.Error("membership not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("membership not found"))
		return
	}

	log.Info("success to delete membership", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_id": id,
	}))
}
