package routes

import "github.com/gofiber/fiber/v2"

func VideoRoutes(api fiber.Router, deps Deps) {
	videos := api.Group("/videos")

	videos.Get("/", deps.OptionalAuth, deps.Videos.List)
	videos.Get("/:videoId", deps.RequireAuth, deps.Videos.GetByID)

	videos.Post("/", deps.RequireAuth, deps.Videos.Publish)
	videos.Patch("/:videoId", deps.RequireAuth, deps.Videos.Update)
	videos.Delete("/:videoId", deps.RequireAuth, deps.Videos.Delete)
	videos.Patch("/toggle/publish/:videoId", deps.RequireAuth, deps.Videos.TogglePublish)
}
