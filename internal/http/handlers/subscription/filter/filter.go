// Package filter реализует HTTP-обработчик выборки подписок по фильтру.
//
// Условия передаются query-параметрами; заполненные объединяются по AND.
// Даты принимаются в формате 2006-01-02.
package filter

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-helper/internal/http/response"
	"github.com/magabrotheeeer/gym-helper/internal/lib/sl"
	"github.com/magabrotheeeer/gym-helper/internal/models"
)

const dateLayout = "2006-01-02"

// Service описывает интерфейс бизнес-логики фильтрации подписок.
type Service interface {
	Filter(ctx context.Context, f models.SubscriptionFilter) ([]*models.Subscription, error)
}

// Handler управляет HTTP-запросами на фильтрацию подписок.
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
// @Summary Выборка подписок по фильтру
// @Description Возвращает подписки, удовлетворяющие всем переданным условиям.
// @Tags Subscriptions
// @Produce  json
// @Param client_id query int false "ID клиента"
// @Param discipline_id query int false "ID дисциплины"
// @Param active query bool false "Активность"
// @Param remaining_classes query int false "Остаток занятий"
// @Param expires_at_from query string false "Истекает не ранее (2006-01-02)"
// @Param expires_at_to query string false "Истекает не позднее (2006-01-02)"
// @Success 200 {object} map[string]any "Список подписок"
// @Failure 400 {object} response.ErrorResponse "Некорректный параметр фильтра"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/filter [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.filter"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	f, err := parseFilter(r)
	if err != nil {
		log.Error("invalid filter parameter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid filter parameter"))
		return
	}

	subs, err := h.service.Filter(r.Context(), f)
	if err != nil {
		log.Error("failed to filter subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to filter subscriptions"))
		return
	}

	log.Info("success to filter subscriptions", slog.Int("count", len(subs)))
	render.JSON(w, r, response.StatusOKWithData(subs))
}

func parseFilter(r *http.Request) (models.SubscriptionFilter, error) {
	var f models.SubscriptionFilter
	q := r.URL.Query()

	if v := q.Get("client_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, err
		}
		f.ClientID = &id
	}
	if v := q.Get("discipline_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, err
		}
		f.DisciplineID = &id
	}
	if v := q.Get("remaining_classes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, err
		}
		f.RemainingClasses = &n
	}
	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return f, err
		}
		f.Active = &active
	}

	dates := map[string]**time.Time{
		"expires_at_from": &f.ExpiresAtFrom,
		"expires_at_to":   &f.ExpiresAtTo,
		"created_at_from": &f.CreatedAtFrom,
		"created_at_to":   &f.CreatedAtTo,
		"updated_at_from": &f.UpdatedAtFrom,
		"updated_at_to":   &f.UpdatedAtTo,
		"deleted_at_from": &f.DeletedAtFrom,
		"deleted_at_to":   &f.DeletedAtTo,
	}
	for param, target := range dates {
		if v := q.Get(param); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				return f, err
			}
			*target = &t
		}
	}
	return f, nil
}
