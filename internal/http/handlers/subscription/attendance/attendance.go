// Package attendance реализует HTTP-обработчик отметки посещения занятия.
//
// Handler принимает ID подписки, вызывает подписочный движок и возвращает
// обновлённую подписку. Повторная отметка в тот же календарный день — 409,
// недействительная подписка — 400, отсутствующая — 404.
package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-helper/internal/http/response"
	"github.com/magabrotheeeer/gym-helper/internal/lib/sl"
	"github.com/magabrotheeeer/gym-helper/internal/models"
	"github.com/magabrotheeeer/gym-helper/internal/storage/repository"
)

// Service описывает интерфейс подписочного движка для учёта посещений.
type Service interface {
	RecordAttendance(ctx context.Context, subscriptionID int64) (*models.Subscription, error)
}

// Handler управляет HTTP-запросами на отметку посещений.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Отметить посещение
// @Description Регистрирует посещение занятия и списывает одно занятие с подписки.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body models.DummyAttendance true "ID подписки"
// @Success 200 {object} models.Subscription "Обновлённая подписка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или недействительная подписка"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Failure 409 {object} response.ErrorResponse "Посещение уже отмечено сегодня"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/class_attendance [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.attendance"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyAttendance
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	sub, err := h.service.RecordAttendance(r.Context(), req.SubscriptionID)
	if err != nil {
		var invalidErr *repository.SubscriptionInvalidError
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Error("subscription not found", slog.Int64("id", req.SubscriptionID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("subscription not found"))
		case errors.Is(err, repository.ErrDuplicateAttendance):
			log.Error("attendance already recorded today", slog.Int64("id", req.SubscriptionID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("attendance already recorded today"))
		case errors.As(err, &invalidErr):
			log.Error("subscription is invalid", slog.String("reason", invalidErr.Reason))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("subscription is invalid: %s", invalidErr.Reason)))
		default:
			log.Error("failed to record attendance", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to record attendance"))
		}
		return
	}

	log.Info("success to record attendance",
		slog.Int64("subscription_id", sub.ID),
		slog.Int("remaining_classes", sub.RemainingClasses))
	render.JSON(w, r, response.StatusOKWithData(sub))
}
