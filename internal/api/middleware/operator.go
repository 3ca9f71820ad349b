package middleware

import (
	"errors"
	"net/http"
	"strings"

	"coop_slots/pkg/resp"
	"coop_slots/pkg/token"
)

var (
	ErrNoToken   = errors.New("missing bearer token")
	ErrForbidden = errors.New("operator role required")
)

// RequireOperator пропускает запрос только с валидным токеном оператора
// в заголовке Authorization: Bearer <token>
func RequireOperator(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, ErrNoToken)
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, err)
				return
			}
			if claims.Role != token.RoleOperator {
				resp.WriteError(w, http.StatusForbidden, ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
