package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/interfaces/http/dto"
)

// RequireRoles gates an endpoint to an allow-list of role codes. The
// caller's role claim must match one of them exactly.
func RequireRoles(roles ...identity.RoleCode) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		allowed[string(r)] = struct{}{}
		names = append(names, r.Name())
	}
	message := "Access denied. Required roles: " + strings.Join(names, ", ")

	return func(c *gin.Context) {
		role := GetRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, "Authentication required", GetRequestID(c)))
			return
		}
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, message, GetRequestID(c)))
			return
		}
		c.Next()
	}
}
