package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-PhotographerService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotographerService/internal/domain"
)

type ctxKey string

const (
	userIDKey   ctxKey = "userID"
	userRoleKey ctxKey = "userRole"

	// HeaderUserID заголовок с идентификатором пользователя
	HeaderUserID = "X-User-ID"
	// HeaderUserRole заголовок с ролью пользователя
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidRole   = "некорректная роль в заголовке X-User-Role"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth извлекает идентификатор и роль пользователя из заголовков запроса.
// Аутентификацию выполняет API gateway, сервис доверяет заголовкам.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(HeaderUserID)
			if userID == "" {
				logger.Warn("Auth: missing %s header: %s %s", HeaderUserID, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			role := domain.Role(r.Header.Get(HeaderUserRole))
			if role == "" {
				role = domain.RoleClient
			}
			if !domain.IsValidRole(role) {
				logger.Warn("Auth: invalid role %q: %s %s", role, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidRole)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, userRoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID возвращает идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// GetActor возвращает пользователя с ролью из контекста запроса
func GetActor(ctx context.Context) (domain.Actor, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return domain.Actor{}, false
	}
	role, ok := ctx.Value(userRoleKey).(domain.Role)
	if !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: userID, Role: role}, true
}
