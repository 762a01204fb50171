package routes

import "github.com/gofiber/fiber/v2"

func UserRoutes(api fiber.Router, deps Deps) {
	users := api.Group("/users")

	users.Post("/register", deps.AuthRateLimit, deps.Users.Register)
	users.Post("/login", deps.AuthRateLimit, deps.Users.Login)
	users.Post("/refresh-token", deps.Users.RefreshToken)

	users.Post("/logout", deps.RequireAuth, deps.Users.Logout)
	users.Post("/change-password", deps.RequireAuth, deps.Users.ChangePassword)
	users.Get("/current-user", deps.RequireAuth, deps.Users.CurrentUser)
	users.Patch("/update-account", deps.RequireAuth, deps.Users.UpdateAccount)
	users.Patch("/avatar", deps.RequireAuth, deps.Users.UpdateAvatar)
	users.Patch("/cover-image", deps.RequireAuth, deps.Users.UpdateCoverImage)
	users.Get("/history", deps.RequireAuth, deps.Users.WatchHistory)

	users.Get("/c/:username", deps.RequireAuth, deps.Users.ChannelProfile)
}
