// Package app предоставляет маршруты для основного приложения.
package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/gym-helper/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/gym-helper/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/gym-helper/internal/http/handlers/auth/register"
	clientactivate "github.com/magabrotheeeer/gym-helper/internal/http/handlers/client/activate"
	clientcreate "github.com/magabrotheeeer/gym-helper/internal/http/handlers/client/create"
	clientfilter "github.com/magabrotheeeer/gym-helper/internal/http/handlers/client/filter"
	clientlist "github.com/magabrotheeeer/gym-helper/internal/http/handlers/client/list"
	clientread "github.com/magabrotheeeer/gym-helper/internal/http/handlers/client/read"
	clientremove "github.com/magabrotheeeer/gym-helper/internal/http/handlers/client/remove"
	clientupdate "github.com/magabrotheeeer/gym-helper/internal/http/handlers/client/update"
	"github.com/magabrotheeeer/gym-helper/internal/http/handlers/health"
	"github.com/magabrotheeeer/gym-helper/internal/http/handlers/membership/disciplineactivate"
	"github.com/magabrotheeeer/gym-helper/internal/http/handlers/membership/disciplinecreate"
	"github.com/magabrotheeeer/gym-helper/internal/http/handlers/membership/disciplineremove"
	"github.com/magabrotheeeer/gym-helper/internal/http/handlers/membership/membershipactivate"
	"github.com/magabrotheeeer/gym-helper/internal/http/handlers/membership/membershipcreate"
	"github.com/magabrotheeeer/gym-helper/internal/http/handlers/membership/membershipremove"
	"github.com/magabrotheeeer/gym-helper/internal/http/handlers/subscription/attendance"
	subscriptioncreate "github.com/magabrotheeeer/gym-helper/internal/http/handlers/subscription/create"
	subscriptionfilter "github.com/magabrotheeeer/gym-helper/internal/http/handlers/subscription/filter"
	subscriptionlist "github.com/magabrotheeeer/gym-helper/internal/http/handlers/subscription/list"
	subscriptionread "github.com/magabrotheeeer/gym-helper/internal/http/handlers/subscription/read"
	"github.com/magabrotheeeer/gym-helper/internal/http/middlewarectx"
	"github.com/magabrotheeeer/gym-helper/internal/models"
	authservice "github.com/magabrotheeeer/gym-helper/internal/services/auth"
	clientservice "github.com/magabrotheeeer/gym-helper/internal/services/client"
	membershipservice "github.com/magabrotheeeer/gym-helper/internal/services/membership"
	subscriptionservice "github.com/magabrotheeeer/gym-helper/internal/services/subscription"
	"github.com/magabrotheeeer/gym-helper/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.Service,
	clientService *clientservice.Service,
	membershipService *membershipservice.Service,
	subscriptionService *subscriptionservice.Service,
	db *repository.Storage,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Post("/auth/refresh_token", refresh.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/clients", clientcreate.New(logger, clientService).ServeHTTP)
			r.Get("/clients", clientlist.New(logger, clientService).ServeHTTP)
			r.Get("/clients/filter", clientfilter.New(logger, clientService).ServeHTTP)
			r.Get("/clients/{id}", clientread.New(logger, clientService).ServeHTTP)
			r.Put("/clients/{id}", clientupdate.New(logger, clientService).ServeHTTP)
			r.Delete("/clients/{id}", clientremove.New(logger, clientService).ServeHTTP)
			r.Patch("/clients/{id}", clientactivate.New(logger, clientService).ServeHTTP)

			// Каталог доступен только администраторам
			r.Route("/membership", func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(logger, models.RoleAdmin))
				r.Post("/discipline", disciplinecreate.New(logger, membershipService).ServeHTTP)
				r.Delete("/discipline/{id}", disciplineremove.New(logger, membershipService).ServeHTTP)
				r.Patch("/discipline/{id}", disciplineactivate.New(logger, membershipService).ServeHTTP)
				r.Post("/", membershipcreate.New(logger, membershipService).ServeHTTP)
				r.Delete("/{id}", membershipremove.New(logger, membershipService).ServeHTTP)
				r.Patch("/{id}", membershipactivate.New(logger, membershipService).ServeHTTP)
			})

			r.Post("/subscriptions", subscriptioncreate.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions", subscriptionlist.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/filter", subscriptionfilter.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/{id}", subscriptionread.New(logger, subscriptionService).ServeHTTP)

			// Отметку посещений делают тренеры и администраторы
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(logger, models.RoleTrainer, models.RoleAdmin))
				r.Post("/subscriptions/class_attendance", attendance.New(logger, subscriptionService).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
