package routes

import "github.com/gofiber/fiber/v2"

func TweetRoutes(api fiber.Router, deps Deps) {
	tweets := api.Group("/tweets")

	tweets.Get("/user/:userId", deps.OptionalAuth, deps.Tweets.ByUser)

	tweets.Post("/", deps.RequireAuth, deps.Tweets.Create)
	tweets.Patch("/:tweetId", deps.RequireAuth, deps.Tweets.Update)
	tweets.Delete("/:tweetId", deps.RequireAuth, deps.Tweets.Delete)
}
