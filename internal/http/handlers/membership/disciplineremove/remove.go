// Package disciplineremove реализует HTTP-обработчик мягкого удаления дисциплины.
//
// Удаление дисциплины каскадно деактивирует её абонементы в одной транзакции.
package disciplineremove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-helper/internal/http/response"
	"github.com/magabrotheeeer/gym-helper/internal/lib/sl"
	"github.com/magabrotheeeer/gym-helper/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики удаления дисциплины.
type Service interface {
	RemoveDiscipline(ctx context.Context, id int64) error
}

// Handler управляет HTTP-запросами на удаление дисциплин.
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
// @Summary Удалить дисциплину
// @Description Мягко удаляет дисциплину и деактивирует её абонементы. Доступно только роли Admin.
// @Tags Memberships
// @Produce  json
// @Param id path int true "ID дисциплины"
// @Success 200 {object} map[string]any "Дисциплина удалена"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Дисциплина не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /membership/discipline/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.disciplineremove"

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

	if err := h.service.RemoveDiscipline(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("discipline not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("discipline not found"))
			return
		}
		log.Error("failed to delete discipline", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete discipline"))
		return
	}

	log.Info("success to delete discipline", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_id": id,
	}))
}
