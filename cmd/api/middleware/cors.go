package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors answers preflight requests and decorates responses for the given
// origins. "*" allows any origin.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       allowedOrigins,
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type", "Authorization"},
		AllowCredentials:     true,
		MaxAge:               3600,
		OptionsSuccessStatus: http.StatusNoContent,
	})
	return c.Handler
}
