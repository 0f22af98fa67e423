package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

//CORS lets the map viewer be hosted anywhere, it wraps the whole router so preflight requests never reach a route
func CORS(origins []string) func(w http.ResponseWriter, r *http.Request, router http.HandlerFunc) {
	return cors.New(corsOptions(origins)).ServeHTTP
}

//corsOptions turns "*" into an origin func, browsers reject a literal * once credentials are allowed
func corsOptions(origins []string) cors.Options {

	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
	}
	for _, o := range origins {
		if o == "*" {
			opts.AllowedOrigins = nil
			opts.AllowOriginFunc = func(string) bool { return true }
			break
		}
	}
	return opts
}
