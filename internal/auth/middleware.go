package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	apperrors "auditorium/internal/errors"
)

// AdminAuthMiddleware guards the admin endpoints. It expects a Bearer
// token issued by the admin login and signed with the given secret.
func AdminAuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			unauthorized := apperrors.ErrUnauthorized("Unauthorized")

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, unauthorized.Message, unauthorized.Code)
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, unauthorized.Message, unauthorized.Code)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
