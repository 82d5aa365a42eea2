package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares pasang middleware global (urutan penting).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
