package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"weezsync/internal/utils"
	"weezsync/internal/utils/logger/sl"

	"github.com/golang-jwt/jwt/v5"
)

// NewAuth returns a middleware requiring a bearer JWT signed (HS256) with
// the server secret on every request of the group it wraps.
func NewAuth(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	log = log.With(slog.String("component", "middleware/auth"))

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				respondUnauthorized(log, w, fmt.Errorf("missing bearer token"))
				return
			}

			_, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil {
				respondUnauthorized(log, w, fmt.Errorf("invalid token: %w", err))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func respondUnauthorized(log *slog.Logger, w http.ResponseWriter, err error) {
	log.Warn("unauthorized request", sl.Err(err))
	if httpErr := utils.Err(w, http.StatusUnauthorized, err); httpErr != nil {
		log.Error("error sending http response", sl.Err(httpErr))
	}
}
