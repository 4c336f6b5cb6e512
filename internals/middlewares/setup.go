// file: internals/middlewares/setup.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"gatepassku_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware dasar dengan urutan:
// recovery paling luar, lalu CORS, lalu request logger.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
