package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/pkg/response"
	"github.com/qs3c/soultria_server/internal/service"
)

// RequireFeature 套餐未开放该功能时直接返回升级提示
func RequireFeature(ents *service.EntitlementService, gate entitlement.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			response.AuthError(c, "")
			c.Abort()
			return
		}

		store := ents.Store(userID)
		if !store.Allows(c.Request.Context(), gate) {
			response.UpgradeError(c, string(gate), string(store.CurrentPlanID(c.Request.Context())))
			c.Abort()
			return
		}

		c.Next()
	}
}
