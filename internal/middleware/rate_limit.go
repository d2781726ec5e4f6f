package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 5 // 1分あたり5回まで
)

// RateLimiter はIP単位のレート制限（INCR + EXPIRE）。
// 認証系エンドポイントのブルートフォース対策に使う。
// clientがnil（Redis未設定）やRedis障害時は素通しにする。
func RateLimiter(client *redis.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if client == nil {
				return next(c)
			}

			key := "rate_limit:" + c.RealIP()

			count, err := client.Incr(c.Request().Context(), key).Result()
			if err != nil {
				return next(c)
			}

			//初回だけ期限を付ける
			if count == 1 {
				client.Expire(c.Request().Context(), key, rateLimitPeriod)
			}

			if count > rateLimitCount {
				return c.JSON(http.StatusTooManyRequests, errorJSON("too many requests"))
			}

			return next(c)
		}
	}
}
