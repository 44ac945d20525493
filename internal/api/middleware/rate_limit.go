package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/pkg/redis"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// RateLimit janela deslizante sobre Redis.
// rdb nil ou erro de Redis degradam para liberação.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "muitas requisições; tente novamente em instantes")
			c.Abort()
			return
		}

		c.Next()
	}
}
