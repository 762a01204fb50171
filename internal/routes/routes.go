package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"

	"github.com/vidtube/backend/configs"
	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/handlers"
	"github.com/vidtube/backend/internal/middleware"
)

// Deps collects the handlers and middleware the router wires together.
type Deps struct {
	Users         *handlers.UserHandler
	Videos        *handlers.VideoHandler
	Comments      *handlers.CommentHandler
	Likes         *handlers.LikeHandler
	Tweets        *handlers.TweetHandler
	Playlists     *handlers.PlaylistHandler
	Subscriptions *handlers.SubscriptionHandler
	Dashboard     *handlers.DashboardHandler

	RequireAuth   fiber.Handler
	OptionalAuth  fiber.Handler
	AuthRateLimit fiber.Handler
}

// NewApp builds the fiber application: global middleware, the swagger UI and
// every resource group under /api/v1.
func NewApp(cfg configs.Config, log zerolog.Logger, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "vidtube",
		ErrorHandler: dto.ErrorHandler,
		BodyLimit:    100 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowCredentials: cfg.CORSOrigin != "*",
	}))
	app.Use(middleware.RequestLogger(log))

	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")
	api.Get("/healthcheck", handlers.Healthcheck)

	UserRoutes(api, deps)
	VideoRoutes(api, deps)
	CommentRoutes(api, deps)
	LikeRoutes(api, deps)
	TweetRoutes(api, deps)
	PlaylistRoutes(api, deps)
	SubscriptionRoutes(api, deps)
	DashboardRoutes(api, deps)

	return app
}
