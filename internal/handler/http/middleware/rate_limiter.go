package middleware

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-gonic/gin"
)

// NewLimiter builds a per-client limiter allowing rps requests per second.
func NewLimiter(rps float64) *limiter.Limiter {
	if rps <= 0 {
		rps = 10
	}
	lmt := tollbooth.NewLimiter(rps, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessageContentType("application/json; charset=utf-8")
	lmt.SetMessage(`{"success":false,"message":"Too many requests, please try again later."}`)
	return lmt
}

// RateLimiter rejects requests over the limit with 429.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return tollbooth_gin.LimitHandler(lmt)
}
