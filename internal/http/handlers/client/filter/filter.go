// Package filter реализует HTTP-обработчик выборки клиентов по фильтру.
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

// Service описывает интерфейс бизнес-логики фильтрации клиентов.
type Service interface {
	Filter(ctx context.Context, f models.ClientFilter) ([]*models.Client, error)
}

// Handler управляет HTTP-запросами на фильтрацию клиентов.
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
// @Summary Выборка клиентов по фильтру
// @Description Возвращает клиентов, удовлетворяющих всем переданным условиям.
// @Tags Clients
// @Produce  json
// @Param name query string false "Имя"
// @Param last_name query string false "Фамилия"
// @Param age query int false "Возраст"
// @Param phone query string false "Телефон"
// @Param active query bool false "Активность"
// @Param created_at_from query string false "Создан не ранее (2006-01-02)"
// @Param created_at_to query string false "Создан не позднее (2006-01-02)"
// @Success 200 {object} map[string]any "Список клиентов"
// @Failure 400 {object} response.ErrorResponse "Некорректный параметр фильтра"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /clients/filter [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.filter"

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

	clients, err := h.service.Filter(r.Context(), f)
	if err != nil {
		log.Error("failed to filter clients", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to filter clients"))
		return
	}

	log.Info("success to filter clients", slog.Int("count", len(clients)))
	render.JSON(w, r, response.StatusOKWithData(clients))
}

func parseFilter(r *http.Request) (models.ClientFilter, error) {
	var f models.ClientFilter
	q := r.URL.Query()

	if v := q.Get("name"); v != "" {
		f.Name = &v
	}
	if v := q.Get("last_name"); v != "" {
		f.LastName = &v
	}
	if v := q.Get("phone"); v != "" {
		f.Phone = &v
	}
	if v := q.Get("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return f, err
		}
		f.Age = &age
	}
	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return f, err
		}
		f.Active = &active
	}

	dates := map[string]**time.Time{
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
