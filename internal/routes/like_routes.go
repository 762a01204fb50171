package routes

import "github.com/gofiber/fiber/v2"

func LikeRoutes(api fiber.Router, deps Deps) {
	likes := api.Group("/likes", deps.RequireAuth)

	likes.Post("/toggle/v/:videoId", deps.Likes.ToggleVideo)
	likes.Post("/toggle/c/:commentId", deps.Likes.ToggleComment)
	likes.Post("/toggle/t/:tweetId", deps.Likes.ToggleTweet)
	likes.Get("/videos", deps.Likes.LikedVideos)
}
