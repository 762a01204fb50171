package routes

import "github.com/gofiber/fiber/v2"

func SubscriptionRoutes(api fiber.Router, deps Deps) {
	subs := api.Group("/subscriptions", deps.RequireAuth)

	subs.Post("/c/:channelId", deps.Subscriptions.Toggle)
	subs.Get("/c/:channelId", deps.Subscriptions.Subscribers)
	subs.Get("/u/:subscriberId", deps.Subscriptions.SubscribedChannels)
}
