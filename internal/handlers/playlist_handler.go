package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/authctx"
	"github.com/vidtube/backend/model"
)

type PlaylistHandler struct {
	Playlists PlaylistStore
	Videos    VideoStore
}

// Create handles POST /playlists.
func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	var req dto.CreatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest("invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" || req.Description == "" {
		return dto.BadRequest("name and description are required")
	}

	playlist, err := h.Playlists.Create(c.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		return dto.Internal(err.Error())
	}
	return dto.Created(c, playlist, "playlist created successfully")
}

// ByUser handles GET /playlists/user/:userId, returning rollup summaries.
func (h *PlaylistHandler) ByUser(c *fiber.Ctx) error {
	owner, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	playlists, err := h.Playlists.ByUser(c.Context(), owner)
	if err != nil {
		return dto.Internal(err.Error())
	}

	message := "playlists fetched successfully"
	if len(playlists) == 0 {
		message = "no playlists found"
	}
	return dto.OK(c, playlists, message)
}

// GetByID handles GET /playlists/:playlistId with published videos expanded.
func (h *PlaylistHandler) GetByID(c *fiber.Ctx) error {
	playlistID, err := paramID(c, "playlistId")
	if err != nil {
		return err
	}

	detail, err := h.Playlists.DetailByID(c.Context(), playlistID)
	if err != nil {
		return notFoundOr(err, "playlist not found")
	}
	return dto.OK(c, detail, "playlist fetched successfully")
}

// Update handles PATCH /playlists/:playlistId.
func (h *PlaylistHandler) Update(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	playlistID, err := paramID(c, "playlistId")
	if err != nil {
		return err
	}

	var req dto.UpdatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest("invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" && req.Description == "" {
		return dto.BadRequest("at least one of name or description is required")
	}

	if _, err := h.ownedPlaylist(c, playlistID, user.ID, "update"); err != nil {
		return err
	}

	updated, err := h.Playlists.Update(c.Context(), playlistID, req.Name, req.Description)
	if err != nil {
		return notFoundOr(err, "playlist not found")
	}
	return dto.OK(c, updated, "playlist updated successfully")
}

// Delete handles DELETE /playlists/:playlistId. Videos referenced by the
// playlist are untouched.
func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	playlistID, err := paramID(c, "playlistId")
	if err != nil {
		return err
	}
	if _, err := h.ownedPlaylist(c, playlistID, user.ID, "delete"); err != nil {
		return err
	}

	if err := h.Playlists.Delete(c.Context(), playlistID); err != nil {
		return notFoundOr(err, "playlist not found")
	}
	return dto.OK(c, nil, "playlist deleted successfully")
}

// AddVideo handles PATCH /playlists/add/:videoId/:playlistId. Adding an
// already-present video is a no-op success.
func (h *PlaylistHandler) AddVideo(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	videoID, err := paramID(c, "videoId")
	if err != nil {
		return err
	}
	playlistID, err := paramID(c, "playlistId")
	if err != nil {
		return err
	}

	if _, err := h.ownedPlaylist(c, playlistID, user.ID, "modify"); err != nil {
		return err
	}
	if _, err := h.Videos.FindByID(c.Context(), videoID); err != nil {
		return notFoundOr(err, "video not found")
	}

	updated, err := h.Playlists.AddVideo(c.Context(), playlistID, videoID)
	if err != nil {
		return notFoundOr(err, "playlist not found")
	}
	return dto.OK(c, updated, "video added to playlist successfully")
}

// RemoveVideo handles PATCH /playlists/remove/:videoId/:playlistId. Removing
// an absent video is a no-op success.
func (h *PlaylistHandler) RemoveVideo(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	videoID, err := paramID(c, "videoId")
	if err != nil {
		return err
	}
	playlistID, err := paramID(c, "playlistId")
	if err != nil {
		return err
	}

	if _, err := h.ownedPlaylist(c, playlistID, user.ID, "modify"); err != nil {
		return err
	}

	updated, err := h.Playlists.RemoveVideo(c.Context(), playlistID, videoID)
	if err != nil {
		return notFoundOr(err, "playlist not found")
	}
	return dto.OK(c, updated, "video removed from playlist successfully")
}

func (h *PlaylistHandler) ownedPlaylist(c *fiber.Ctx, playlistID, actor bson.ObjectID, verb string) (model.Playlist, error) {
	playlist, err := h.Playlists.FindByID(c.Context(), playlistID)
	if err != nil {
		return model.Playlist{}, notFoundOr(err, "playlist not found")
	}
	if !authctx.CanMutate(actor, playlist.Owner) {
		return model.Playlist{}, dto.Forbidden("only the owner can " + verb + " this playlist")
	}
	return playlist, nil
}
