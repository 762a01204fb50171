package routes

import "github.com/gofiber/fiber/v2"

func CommentRoutes(api fiber.Router, deps Deps) {
	comments := api.Group("/comments")

	comments.Get("/:videoId", deps.OptionalAuth, deps.Comments.List)

	comments.Post("/:videoId", deps.RequireAuth, deps.Comments.Create)
	comments.Patch("/c/:commentId", deps.RequireAuth, deps.Comments.Update)
	comments.Delete("/c/:commentId", deps.RequireAuth, deps.Comments.Delete)
}
