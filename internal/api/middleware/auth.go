package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StayPlanner/internal/api/handlers"
)

// HeaderUserID заголовок с ID администратора, проставляется API gateway
const HeaderUserID = "X-User-ID"

const msgUnauthorized = "требуется заголовок X-User-ID"

type userIDKey struct{}

// Auth извлекает ID пользователя из X-User-ID и кладёт его в контекст.
// Аутентификация выполняется на gateway, здесь только проверка наличия.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя, сохранённый Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

// WithUserID кладёт ID пользователя в контекст (для тестов handlers)
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}
