// Package create реализует HTTP-обработчик покупки абонемента клиентом.
//
// Handler принимает пару (client_id, membership_id), валидирует её и вызывает
// подписочный движок: если подписки на дисциплину абонемента ещё нет —
// создаётся новая (201), иначе существующая продлевается (200).
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-helper/internal/http/response"
	"github.com/magabrotheeeer/gym-helper/internal/lib/sl"
	"github.com/magabrotheeeer/gym-helper/internal/models"
	"github.com/magabrotheeeer/gym-helper/internal/services/subscription"
)

// Service описывает интерфейс подписочного движка.
type Service interface {
	Subscribe(ctx context.Context, req models.DummySubscription) (*models.Subscription, bool, error)
}

// Handler управляет HTTP-запросами на покупку абонементов.
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
// @Summary Купить абонемент
// @Description Оформляет подписку клиента: создает новую или продлевает существующую.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body models.DummySubscription true "Клиент и абонемент"
// @Success 200 {object} map[string]any "Подписка продлена"
// @Success 201 {object} map[string]any "Подписка создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или недействительная ссылка"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.create"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummySubscription
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

	sub, created, err := h.service.Subscribe(r.Context(), req)
	if err != nil {
		if errors.Is(err, subscription.ErrInvalidReference) {
			log.Error("invalid reference", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("client or membership is missing or inactive"))
			return
		}
		log.Error("failed to subscribe", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create subscription"))
		return
	}

	if created {
		log.Info("success to create subscription", slog.Int64("id", sub.ID))
		w.WriteHeader(http.StatusCreated)
	} else {
		log.Info("success to renew subscription", slog.Int64("id", sub.ID))
	}
	render.JSON(w, r, response.StatusOKWithData(sub))
}
