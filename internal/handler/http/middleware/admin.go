package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hospomate/hospomate-backend-go/internal/domain/auth"
	"github.com/hospomate/hospomate-backend-go/internal/handler/http/response"
)

// AdminOnly lets through tokens carrying is_admin=true
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !admin || !ok {
			response.HandleError(w, auth.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
