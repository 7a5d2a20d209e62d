package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-helper/internal/http/response"
	"github.com/magabrotheeeer/gym-helper/internal/models"
)

// RequireRole создает middleware, пропускающий запрос только при наличии
// в контексте одной из перечисленных ролей. Остальным возвращается 403.
func RequireRole(log *slog.Logger, roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawRole, ok := r.Context().Value(Role).(string)
			if !ok || rawRole == "" {
				log.Error("role missing in request context")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			role, err := models.ParseRole(rawRole)
			if err != nil || !role.In(roles...) {
				log.Error("access denied",
					slog.String("role", rawRole))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("access denied"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
