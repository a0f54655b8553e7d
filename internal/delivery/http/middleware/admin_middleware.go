package middleware

import (
	"net/http"

	"fisiogestao/pkg/response"
)

// RequireAdmin rejects requests whose authenticated practitioner does not
// carry the admin flag. Must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isAdmin, ok := GetIsAdminFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Não autorizado")
			return
		}

		if !isAdmin {
			response.Forbidden(w, "Acesso negado. Privilégios administrativos necessários")
			return
		}

		next.ServeHTTP(w, r)
	})
}
