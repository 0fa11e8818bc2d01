package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// CORSConfig contains the cross-origin policy for the board endpoints.
// The origin allow-list is guarded by a lock so the config watcher can
// swap it at runtime without restarting the server.
type CORSConfig struct {
	mu             sync.RWMutex
	allowedOrigins []string

	// AllowCredentials controls whether credentialed requests are allowed.
	AllowCredentials bool

	// MaxAge is the maximum age (in seconds) for preflight cache.
	MaxAge int
}

// NewCORSConfig creates a CORS configuration with the given origin
// allow-list. Use ["*"] to allow all origins.
func NewCORSConfig(allowedOrigins []string, allowCredentials bool, maxAge int) *CORSConfig {
	return &CORSConfig{
		allowedOrigins:   allowedOrigins,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	}
}

// SetAllowedOrigins replaces the origin allow-list. Safe to call while the
// server is handling requests.
func (c *CORSConfig) SetAllowedOrigins(origins []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allowedOrigins = origins
}

// AllowedOrigins returns a copy of the current allow-list.
func (c *CORSConfig) AllowedOrigins() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.allowedOrigins...)
}

// isOriginAllowed checks if an origin is in the allow-list.
func (c *CORSConfig) isOriginAllowed(origin string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, allowed := range c.allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// CORSMiddleware adds Cross-Origin Resource Sharing headers to responses.
// All methods and headers are permitted for allowed origins; requests from
// other origins get no CORS headers and the browser blocks them.
func CORSMiddleware(config *CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && config.isOriginAllowed(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")

				if config.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			// Handle preflight OPTIONS request
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods",
					strings.Join([]string{
						http.MethodGet, http.MethodPost, http.MethodPatch,
						http.MethodDelete, http.MethodOptions,
					}, ", "))

				// Echo requested headers back: all headers are permitted
				// for allowed origins.
				if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
					w.Header().Set("Access-Control-Allow-Headers", reqHeaders)
				}

				if config.MaxAge > 0 {
					w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				}

				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
