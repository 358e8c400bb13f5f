package middleware

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

// CORS wraps the whole HTTP handler so preflight requests are answered
// before routing. Credentials are only allowed for an explicit origin list;
// browsers reject them alongside a wildcard origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", RequestIDHeader},
		ExposedHeaders:   []string{"Authorization", RequestIDHeader},
		AllowCredentials: !slices.Contains(allowedOrigins, "*"),
		MaxAge:           300,
	})
}
