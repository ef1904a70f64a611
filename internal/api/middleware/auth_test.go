package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/soultria_server/internal/pkg/jwt"
	"github.com/qs3c/soultria_server/internal/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testJWTSecret = "test-secret-key-for-middleware"

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

func signToken(t *testing.T, userID int64, secret string, hours int) string {
	t.Helper()
	token, err := jwt.GenerateToken(userID, secret, hours)
	require.NoError(t, err)
	return token
}

// whoami 返回上下文中的用户 ID，未登录时为 0
func whoami(c *gin.Context) {
	userID, _ := GetUserID(c)
	response.Success(c, gin.H{"user_id": userID})
}

func serve(router *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	valid := signToken(t, 123, testJWTSecret, 24)

	tests := []struct {
		name          string
		authorization string
		wantCode      int
		wantMessage   string
	}{
		{"valid", "Bearer " + valid, response.CodeSuccess, ""},
		{"missing header", "", response.CodeAuthFailed, "missing authorization header"},
		{"no bearer prefix", valid, response.CodeAuthFailed, "authorization header must use Bearer scheme"},
		{"empty bearer", "Bearer ", response.CodeAuthFailed, "authorization header must use Bearer scheme"},
		{"garbage token", "Bearer not-a-jwt", response.CodeAuthFailed, "invalid or expired token"},
		{"wrong secret", "Bearer " + signToken(t, 123, "other-secret", 24), response.CodeAuthFailed, "invalid or expired token"},
		{"expired", "Bearer " + signToken(t, 123, testJWTSecret, -1), response.CodeAuthFailed, "invalid or expired token"},
	}

	router := gin.New()
	router.Use(Auth(testJWTSecret))
	router.GET("/me", whoami)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, "/me", tt.authorization)
			assert.Equal(t, http.StatusOK, w.Code)

			resp := parseResponse(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			if tt.wantCode == response.CodeSuccess {
				assert.Equal(t, float64(123), resp.Data.(map[string]interface{})["user_id"])
			} else {
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
		})
	}
}

func TestAuth_IgnoresQueryToken(t *testing.T) {
	router := gin.New()
	router.Use(Auth(testJWTSecret))
	router.GET("/me", whoami)

	w := serve(router, "/me?token="+signToken(t, 5, testJWTSecret, 1), "")
	assert.Equal(t, response.CodeAuthFailed, parseResponse(t, w).Code)
}

func TestOptionalAuth(t *testing.T) {
	router := gin.New()
	router.Use(OptionalAuth(testJWTSecret))
	router.GET("/plans", whoami)

	tests := []struct {
		name          string
		authorization string
		wantUserID    float64
	}{
		{"valid token", "Bearer " + signToken(t, 456, testJWTSecret, 24), 456},
		{"anonymous", "", 0},
		{"invalid token", "Bearer invalid", 0},
		{"wrong scheme", "Basic dXNlcjpwYXNz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := parseResponse(t, serve(router, "/plans", tt.authorization))
			require.Equal(t, response.CodeSuccess, resp.Code)
			assert.Equal(t, tt.wantUserID, resp.Data.(map[string]interface{})["user_id"])
		})
	}
}

func TestAuthenticate_AcceptsQueryToken(t *testing.T) {
	token := signToken(t, 77, testJWTSecret, 1)

	var (
		gotID  int64
		gotErr error
	)
	router := gin.New()
	router.GET("/ws", func(c *gin.Context) {
		gotID, gotErr = Authenticate(c, testJWTSecret)
	})

	serve(router, "/ws?token="+token, "")
	require.NoError(t, gotErr)
	assert.Equal(t, int64(77), gotID)

	serve(router, "/ws", "")
	assert.ErrorIs(t, gotErr, ErrMissingToken)

	// 请求头优先于查询参数
	serve(router, "/ws?token="+token, "Token "+token)
	assert.ErrorIs(t, gotErr, ErrBearerScheme)
}

func TestGetUserID(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		set    bool
		wantID int64
		wantOK bool
	}{
		{"not set", nil, false, 0, false},
		{"wrong type", "42", true, 0, false},
		{"int64", int64(789), true, 789, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			if tt.set {
				c.Set(UserIDKey, tt.value)
			}
			id, ok := GetUserID(c)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
