package middleware

import (
	"net/http"
	"strings"

	"ogre-backend/internal/service/auth"
	"ogre-backend/internal/types"

	"github.com/gin-gonic/gin"
)

const (
	contextUserID        = "user_id"
	contextWalletAddress = "wallet_address"
)

// AuthMiddleware 校验 Authorization: Bearer <access token>，通过后把用户写入上下文
func AuthMiddleware(authService auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abort(c, "MISSING_TOKEN", "Authorization header required")
			return
		}

		claims, err := authService.VerifyToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			abort(c, "INVALID_TOKEN", err.Error())
			return
		}

		c.Set(contextUserID, claims.UserID)
		c.Set(contextWalletAddress, claims.WalletAddress)
		c.Next()
	}
}

func abort(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, types.APIResponse{
		Success: false,
		Error: &types.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// GetUserFromContext 读取认证用户
func GetUserFromContext(c *gin.Context) (int64, string, bool) {
	userID, ok := c.Get(contextUserID)
	if !ok {
		return 0, "", false
	}
	wallet, ok := c.Get(contextWalletAddress)
	if !ok {
		return 0, "", false
	}
	id, ok1 := userID.(int64)
	addr, ok2 := wallet.(string)
	return id, addr, ok1 && ok2
}
