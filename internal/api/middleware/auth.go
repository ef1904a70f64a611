package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/soultria_server/internal/pkg/jwt"
	"github.com/qs3c/soultria_server/internal/pkg/response"
)

const (
	UserIDKey = "userID"
)

var (
	ErrMissingToken = errors.New("missing authorization header")
	ErrBearerScheme = errors.New("authorization header must use Bearer scheme")
)

// RequestToken 取请求中的令牌
//
// 优先使用 Authorization 头；浏览器建立 WebSocket 时无法设置请求头，
// allowQuery 为 true 时也接受 ?token= 参数。
func RequestToken(c *gin.Context, allowQuery bool) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if token := c.Query("token"); allowQuery && token != "" {
			return token, nil
		}
		return "", ErrMissingToken
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", ErrBearerScheme
	}
	return token, nil
}

// Auth JWT 认证中间件
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authenticate(c, jwtSecret, false)
		if err != nil {
			response.AuthError(c, err.Error())
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth 可选认证，令牌无效时按未登录处理
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := authenticate(c, jwtSecret, false); err == nil {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

// Authenticate 校验请求令牌并返回用户 ID，供不经过中间件的入口使用
func Authenticate(c *gin.Context, jwtSecret string) (int64, error) {
	return authenticate(c, jwtSecret, true)
}

func authenticate(c *gin.Context, jwtSecret string, allowQuery bool) (int64, error) {
	token, err := RequestToken(c, allowQuery)
	if err != nil {
		return 0, err
	}

	claims, err := jwt.ParseToken(token, jwtSecret)
	if err != nil {
		return 0, errors.New("invalid or expired token")
	}
	return claims.UserID, nil
}

// GetUserID 从上下文获取用户 ID
func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := userID.(int64)
	return id, ok
}
