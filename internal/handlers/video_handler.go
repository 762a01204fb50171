package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/authctx"
	"github.com/vidtube/backend/model"
)

type VideoHandler struct {
	Videos   VideoStore
	Comments CommentStore
	Likes    LikeStore
	Media    MediaStore
	History  WatchRecorder
	Log      zerolog.Logger
}

// List handles GET /videos.
//
// @Summary List published videos
// @Tags videos
// @Produce json
// @Param page query int false "page number" default(1)
// @Param limit query int false "page size" default(10)
// @Param query query string false "free-text search over title and description"
// @Param userId query string false "filter by owner"
// @Param sortBy query string false "views | createdAt | duration"
// @Param sortType query string false "asc | desc"
// @Success 200 {object} dto.ApiResponse
// @Router /videos [get]
func (h *VideoHandler) List(c *fiber.Ctx) error {
	q := model.VideoQuery{
		Query:   strings.TrimSpace(c.Query("query")),
		SortBy:  c.Query("sortBy"),
		SortAsc: c.Query("sortType") == "asc",
	}
	q.Page, q.Limit = pageParams(c)

	if userID := c.Query("userId"); userID != "" {
		owner, err := bson.ObjectIDFromHex(userID)
		if err != nil {
			return dto.BadRequest("invalid userId")
		}
		q.Owner = owner
	}
	if viewer, ok := authctx.UserIDFrom(c); ok {
		q.Viewer = viewer
	}

	page, err := h.Videos.List(c.Context(), q)
	if err != nil {
		return dto.Internal(err.Error())
	}

	message := "videos fetched successfully"
	if len(page.Docs) == 0 {
		message = "no videos found"
	}
	return dto.OK(c, page, message)
}

// Publish handles POST /videos: multipart upload of the video file and its
// thumbnail. Both uploads must return durable URLs before the document is
// created.
func (h *VideoHandler) Publish(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	if title == "" || description == "" {
		return dto.BadRequest("title and description are required")
	}

	duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)
	if duration < 0 {
		duration = 0
	}

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		return dto.BadRequest("videoFile is required")
	}
	thumbFile, err := c.FormFile("thumbnail")
	if err != nil {
		return dto.BadRequest("thumbnail is required")
	}

	videoAsset, err := uploadFormFile(c.Context(), h.Media, "videos", videoFile)
	if err != nil {
		return err
	}
	thumbAsset, err := uploadFormFile(c.Context(), h.Media, "thumbnails", thumbFile)
	if err != nil {
		return err
	}

	video, err := h.Videos.Create(c.Context(), model.Video{
		VideoFile:   videoAsset,
		Thumbnail:   thumbAsset,
		Title:       title,
		Description: description,
		Duration:    duration,
		IsPublished: true,
		Owner:       user.ID,
	})
	if err != nil {
		return dto.Internal(err.Error())
	}
	return dto.Created(c, video, "video published successfully")
}

// GetByID handles GET /videos/:videoId. A successful fetch counts as a view:
// the counter is bumped and the video lands at the front of the caller's
// watch history.
func (h *VideoHandler) GetByID(c *fiber.Ctx) error {
	videoID, err := paramID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.Videos.FindByID(c.Context(), videoID)
	if err != nil {
		return notFoundOr(err, "video not found")
	}

	if err := h.Videos.IncrementViews(c.Context(), videoID); err != nil {
		h.Log.Warn().Err(err).Str("video_id", videoID.Hex()).Msg("failed to increment views")
	} else {
		video.Views++
	}
	if viewer, ok := authctx.UserIDFrom(c); ok {
		if err := h.History.RecordWatch(c.Context(), viewer, videoID); err != nil {
			h.Log.Warn().Err(err).Str("video_id", videoID.Hex()).Msg("failed to record watch history")
		}
	}

	return dto.OK(c, video, "video fetched successfully")
}

// Update handles PATCH /videos/:videoId for title, description and/or a new
// thumbnail.
func (h *VideoHandler) Update(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	videoID, err := paramID(c, "videoId")
	if err != nil {
		return err
	}

	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	thumbFile, thumbErr := c.FormFile("thumbnail")
	if title == "" && description == "" && thumbErr != nil {
		return dto.BadRequest("at least one of title, description or thumbnail is required")
	}

	video, err := h.Videos.FindByID(c.Context(), videoID)
	if err != nil {
		return notFoundOr(err, "video not found")
	}
	if !authctx.CanMutate(user.ID, video.Owner) {
		return dto.Forbidden("only the owner can update this video")
	}

	set := bson.M{}
	if title != "" {
		set["title"] = title
	}
	if description != "" {
		set["description"] = description
	}

	var newThumb model.MediaAsset
	if thumbErr == nil {
		if newThumb, err = uploadFormFile(c.Context(), h.Media, "thumbnails", thumbFile); err != nil {
			return err
		}
		set["thumbnail"] = newThumb
	}

	updated, err := h.Videos.Update(c.Context(), videoID, set)
	if err != nil {
		return notFoundOr(err, "video not found")
	}

	if newThumb.Key != "" && video.Thumbnail.Key != "" {
		if derr := h.Media.Delete(c.Context(), video.Thumbnail); derr != nil {
			h.Log.Warn().Err(derr).Str("key", video.Thumbnail.Key).Msg("failed to delete replaced thumbnail")
		}
	}
	return dto.OK(c, updated, "video details updated successfully")
}

// Delete handles DELETE /videos/:videoId. Dependent likes and comments go
// first, then the video document; media assets are removed only once the
// document delete is confirmed, so a failed delete never orphans a live
// video's files.
func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	videoID, err := paramID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.Videos.FindByID(c.Context(), videoID)
	if err != nil {
		return notFoundOr(err, "video not found")
	}
	if !authctx.CanMutate(user.ID, video.Owner) {
		return dto.Forbidden("only the owner can delete this video")
	}

	commentIDs, err := h.Comments.IDsByVideo(c.Context(), videoID)
	if err != nil {
		return dto.Internal(err.Error())
	}
	if err := h.Likes.DeleteByTargets(c.Context(), model.TargetVideo, []bson.ObjectID{videoID}); err != nil {
		return dto.Internal(err.Error())
	}
	if err := h.Likes.DeleteByTargets(c.Context(), model.TargetComment, commentIDs); err != nil {
		return dto.Internal(err.Error())
	}
	if err := h.Comments.DeleteByVideo(c.Context(), videoID); err != nil {
		return dto.Internal(err.Error())
	}
	if err := h.Videos.Delete(c.Context(), videoID); err != nil {
		return notFoundOr(err, "video not found")
	}

	for _, asset := range []model.MediaAsset{video.VideoFile, video.Thumbnail} {
		if asset.Key == "" {
			continue
		}
		if derr := h.Media.Delete(c.Context(), asset); derr != nil {
			h.Log.Warn().Err(derr).Str("key", asset.Key).Msg("failed to delete media asset")
		}
	}

	return dto.OK(c, nil, "video deleted successfully")
}

// TogglePublish handles PATCH /videos/toggle/publish/:videoId.
func (h *VideoHandler) TogglePublish(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	videoID, err := paramID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.Videos.FindByID(c.Context(), videoID)
	if err != nil {
		return notFoundOr(err, "video not found")
	}
	if !authctx.CanMutate(user.ID, video.Owner) {
		return dto.Forbidden("only the owner can toggle this video")
	}

	updated, err := h.Videos.TogglePublish(c.Context(), videoID)
	if err != nil {
		return notFoundOr(err, "video not found")
	}
	return dto.OK(c, dto.TogglePublishResponse{IsPublished: updated.IsPublished}, "publish state toggled successfully")
}
