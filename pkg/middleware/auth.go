package middleware

import (
	"net/http"
	"strings"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer token and stores the principal in the
// request context. Requests without a valid token are rejected here.
func Authenticate(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(jwtSecret, parts[1])
			if err != nil {
				logger.Warn("Invalid bearer token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetPrincipalContext(r.Context(), claims.AdminID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires the authenticated principal to be an active admin. The
// role claim alone is not trusted; the account is re-checked against the
// store so revoked admins lose access when their token is still live.
func Admin(adminRepo repository.AdminRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID, ok := utils.GetAdminIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			admin, err := adminRepo.FindByID(r.Context(), adminID)
			if err != nil {
				logger.Error("Admin check: failed to get admin",
					zap.Error(err), zap.String("admin_id", adminID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if admin == nil || admin.Role != entity.RoleAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("admin_id", adminID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
