package routes

import "github.com/gofiber/fiber/v2"

func DashboardRoutes(api fiber.Router, deps Deps) {
	dashboard := api.Group("/dashboard", deps.RequireAuth)

	dashboard.Get("/stats", deps.Dashboard.Stats)
	dashboard.Get("/videos", deps.Dashboard.Videos)
}
