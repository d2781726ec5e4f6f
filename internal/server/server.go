package server

import (
	"app/internal/config"
	"app/internal/handler"
	appmw "app/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Profile *handler.ProfileHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
}

// New はechoを組み立てて全ルートを登録する。
func New(cfg config.Config, h Handlers, redisClient *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	//CORS（FE_URL未設定ならデフォルトの全許可）
	if cfg.FEURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: []string{cfg.FEURL},
		}))
	} else {
		e.Use(echomw.CORS())
	}

	api := e.Group("/api")

	h.Auth.RegisterRoutes(api, appmw.RateLimiter(redisClient))
	h.Product.RegisterRoutes(api)
	h.Profile.RegisterRoutes(api, cfg)
	h.Cart.RegisterRoutes(api, cfg)
	h.Order.RegisterRoutes(api, cfg)

	return e
}

// Start はサーバー起動。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
