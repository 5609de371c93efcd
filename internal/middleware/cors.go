// Package middleware provides reusable HTTP middleware for the Family Trip API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// preflightMaxAge is how long browsers may cache a preflight answer, in seconds.
const preflightMaxAge = 600

// NewCORSHandler allows the viewer and admin frontends at origins to call the
// API. Authorization is allowed for the admin bearer token and
// Content-Disposition is exposed so CSV downloads keep their file name.
func NewCORSHandler(origins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         preflightMaxAge,
	}).Handler
}
