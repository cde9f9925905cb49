package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Catalog/internal/handler/http/dto"
	"github.com/mikiasgoitom/Catalog/internal/usecase"
)

// AuthMiddleWare verifies the access token in the Authorization header and
// stores the caller's id under "userID". Both a bare token and the
// "Bearer <token>" form are accepted.
func AuthMiddleWare(jwtService usecase.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Envelope{Success: false, Message: "No token provided"})
			return
		}

		token := header
		if scheme, rest, found := strings.Cut(header, " "); found && strings.EqualFold(scheme, "bearer") {
			token = strings.TrimSpace(rest)
		} else if strings.EqualFold(header, "bearer") {
			token = ""
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Envelope{Success: false, Message: "Token malformed"})
			return
		}

		claims, err := jwtService.ParseAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Envelope{Success: false, Message: "Invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
