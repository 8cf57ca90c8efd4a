package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token into a caller identity. The
// identity is stored on the gin context and on the request context, so it is
// scoped to this request only.
func AuthMiddleware(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		identity, err := authUC.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), identity.UserID)
		c.Set(string(domain.KeyUserRole), identity.Role)
		c.Request = c.Request.WithContext(domain.WithIdentity(c.Request.Context(), identity))

		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequireRole rejects callers whose role is not in roles. It must run after AuthMiddleware.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := domain.IdentityFrom(c.Request.Context())
		if !ok {
			c.Error(apperror.Unauthorized("Not authenticated"))
			c.Abort()
			return
		}
		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		c.Error(apperror.New(http.StatusForbidden, apperror.KindAuth, "Insufficient permissions", nil))
		c.Abort()
	}
}

// CurrentIdentity returns the caller resolved by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (domain.Identity, bool) {
	return domain.IdentityFrom(c.Request.Context())
}
