package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/insight24/insight-backend/api/responses"
	pkgAuth "github.com/insight24/insight-backend/pkg/auth"
	"github.com/insight24/insight-backend/pkg/config"
	"github.com/insight24/insight-backend/pkg/db/models"
	pkgerrors "github.com/insight24/insight-backend/pkg/errors"
	"github.com/insight24/insight-backend/pkg/logger"
	"gorm.io/gorm"
)

// UserFinder resolves token subjects to stored users.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// Auth validates a bearer token and seeds the request context with the
// authenticated username. The subject must still exist in the users table.
func Auth(cfg config.JWTConfig, users UserFinder, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			username := claims.Username()
			if username == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing subject"))
				return
			}

			if users != nil {
				if _, err := users.FindByUsername(r.Context(), username); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "unknown subject"))
						return
					}
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve subject"))
					return
				}
			}

			ctx := WithUsername(r.Context(), username)
			if logg != nil {
				ctx = logg.WithUsername(ctx, username)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
