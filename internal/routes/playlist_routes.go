package routes

import "github.com/gofiber/fiber/v2"

func PlaylistRoutes(api fiber.Router, deps Deps) {
	playlists := api.Group("/playlists")

	playlists.Get("/user/:userId", deps.Playlists.ByUser)
	playlists.Get("/:playlistId", deps.Playlists.GetByID)

	playlists.Post("/", deps.RequireAuth, deps.Playlists.Create)
	playlists.Patch("/:playlistId", deps.RequireAuth, deps.Playlists.Update)
	playlists.Delete("/:playlistId", deps.RequireAuth, deps.Playlists.Delete)
	playlists.Patch("/add/:videoId/:playlistId", deps.RequireAuth, deps.Playlists.AddVideo)
	playlists.Patch("/remove/:videoId/:playlistId", deps.RequireAuth, deps.Playlists.RemoveVideo)
}
