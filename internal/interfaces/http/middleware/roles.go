package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/partyhub/backend/internal/interfaces/http/dto"
)

// RequireRoles allows the request through only when the token's role
// claim is in the given set. Routes behind this middleware must also be
// behind JWTAuthMiddleware; a request with no role claim is rejected.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role := GetJWTRole(c)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient role"))
			return
		}
		c.Next()
	}
}
