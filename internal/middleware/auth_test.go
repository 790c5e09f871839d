package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ogre-backend/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuth struct{}

func (stubAuth) WalletConnect(context.Context, *types.WalletConnectRequest) (*types.WalletConnectResponse, error) {
	return nil, errors.New("unused")
}

func (stubAuth) RefreshToken(context.Context, *types.RefreshTokenRequest) (*types.WalletConnectResponse, error) {
	return nil, errors.New("unused")
}

func (stubAuth) GetProfile(context.Context, int64) (*types.UserProfile, error) {
	return nil, errors.New("unused")
}

func (stubAuth) VerifyToken(_ context.Context, token string) (*types.JWTClaims, error) {
	if token != "good" {
		return nil, errors.New("invalid token")
	}
	return &types.JWTClaims{UserID: 7, WalletAddress: "0x00000000000000000000000000000000000000aa", Type: "access"}, nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(stubAuth{}), func(c *gin.Context) {
		id, wallet, ok := GetUserFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "wallet": wallet})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()
	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"invalid", "Bearer bad", http.StatusUnauthorized},
		{"valid", "Bearer good", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.JSONEq(t, `{"id":7,"wallet":"0x00000000000000000000000000000000000000aa"}`, w.Body.String())
			}
		})
	}
}

func TestGetUserFromContextMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, _, ok := GetUserFromContext(c)
	assert.False(t, ok)
}
