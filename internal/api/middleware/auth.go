package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

const msgUnauthorized = "требуется заголовок X-User-ID"

type ctxKey struct{}

var userIDKey ctxKey

// Auth middleware требует валидный заголовок X-User-ID
// и кладет идентификатор пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает идентификатор пользователя из контекста
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
