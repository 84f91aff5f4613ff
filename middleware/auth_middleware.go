package middleware

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/utils"
)

type contextKey string

const ContextKeyUser = contextKey("user")

// UserLoader resolves the authenticated user record for a token subject.
// It keeps the middleware free of any repository dependency.
type UserLoader func(ctx context.Context, id int64) (*models.User, error)

// AuthMiddleware – for protected endpoints. The JWT is read from
// Authorization: Bearer ...; if the token is missing or invalid, returns 401.
// On success the full user record is attached to the request context.
func AuthMiddleware(pub *rsa.PublicKey, issuer string, loadUser UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			tok, vErr := ValidateToken(tokenStr, pub, issuer)
			if vErr != nil || !tok.Valid {
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
				)
				return
			}

			userID, err := SubjectID(tok)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid subject", nil, err,
				)
				return
			}

			user, err := loadUser(r.Context(), userID)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Unknown user", nil, err,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromRequest returns the user attached by AuthMiddleware, or nil when
// the request is unauthenticated.
func UserFromRequest(r *http.Request) *models.User {
	u, _ := r.Context().Value(ContextKeyUser).(*models.User)
	return u
}

// helper: read the token from the Authorization header
func extractAccessToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing Authorization header")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("malformed subject claim")
	}
	return id, nil
}
