package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// withAuth is an HTTP middleware that enforces JWT-based authentication.
//
// Tokens are issued by the identity service and verified here with the
// shared HS256 key and the expected issuer. On success the user id from the
// "sub" claim is stored in the request context under [utils.UserIDCtxKey].
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent or malformed, or when the token is expired or otherwise invalid.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.auth.TokenSignKey, h.auth.TokenIssuer)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Err(err).Msg("token expired")
				http.Error(w, "token is expired", http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a "Bearer <token>" header
// value. The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return strings.TrimSpace(token), nil
}
