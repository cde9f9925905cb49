package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/Catalog/internal/handler/http/middleware"
	mocks "github.com/mikiasgoitom/Catalog/internal/handler/http/mocks"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleWare(mocks.NewMockJWTService()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID"), "email": c.GetString("email")})
	})
	return r
}

func TestAuthMiddleWare(t *testing.T) {
	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "No token provided"},
		{"empty bearer", "Bearer    ", http.StatusUnauthorized, "Token malformed"},
		{"invalid token", "Bearer nope", http.StatusUnauthorized, "Invalid token"},
		{"bearer token", "Bearer valid-token", http.StatusOK, `"userID":"mock-user-id"`},
		{"lowercase scheme", "bearer valid-token", http.StatusOK, `"email":"test@example.com"`},
		{"raw token", "valid-token", http.StatusOK, `"userID":"mock-user-id"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupAuthRouter()
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.body)
		})
	}
}
