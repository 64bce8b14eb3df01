package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/inigoestebangomez/cool-mex-server/internal/api/handlers"
)

const (
	msgInvalidToken = "Token no existe o no es valido"
	msgNotAdmin     = "No puedes acceder porque no eres admin"
	roleAdmin       = "admin"
)

type ctxKey int

const subjectKey ctxKey = iota

// GetSubject возвращает subject токена из контекста запроса
func GetSubject(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(subjectKey).(string)
	return sub, ok
}

// AdminAuth проверяет Bearer-токен (HS256) и требует роль admin
// Используется для административных маршрутов: список броней за дату,
// удаление брони, просмотр конфигурации
func AdminAuth(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				// Принимаем только HMAC, иначе секрет можно обойти
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			role, _ := claims["role"].(string)
			if role != roleAdmin {
				handlers.RespondUnauthorized(w, msgNotAdmin)
				return
			}

			if sub, err := claims.GetSubject(); err == nil && sub != "" {
				r = r.WithContext(context.WithValue(r.Context(), subjectKey, sub))
			}

			next.ServeHTTP(w, r)
		})
	}
}
