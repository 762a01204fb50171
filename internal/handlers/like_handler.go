package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/authctx"
	"github.com/vidtube/backend/model"
)

// targetFinder checks that a like target exists before a toggle touches it.
type targetFinder func(ctx context.Context, id bson.ObjectID) error

type LikeHandler struct {
	Likes  LikeStore
	Videos VideoStore
	Comms  CommentStore
	Tweets TweetStore
}

// toggle flips the (target, user) like and reports the resulting state plus
// the persisted total. Delete-if-present wins; otherwise an insert, where a
// duplicate-key race means another request from the same user just liked it,
// which converges on the same "now liked" state.
func (h *LikeHandler) toggle(ctx context.Context, targetType string, targetID, userID bson.ObjectID) (dto.ToggleLikeResponse, error) {
	removed, err := h.Likes.Remove(ctx, targetType, targetID, userID)
	if err != nil {
		return dto.ToggleLikeResponse{}, dto.Internal(err.Error())
	}

	isLiked := false
	if !removed {
		if _, err := h.Likes.Add(ctx, targetType, targetID, userID); err != nil {
			return dto.ToggleLikeResponse{}, dto.Internal(err.Error())
		}
		isLiked = true
	}

	total, err := h.Likes.Count(ctx, targetType, targetID)
	if err != nil {
		return dto.ToggleLikeResponse{}, dto.Internal(err.Error())
	}
	return dto.ToggleLikeResponse{IsLiked: isLiked, TotalLikes: total}, nil
}

func (h *LikeHandler) toggleHandler(c *fiber.Ctx, targetType, param string, exists targetFinder) error {
	user, _ := authctx.UserFrom(c)

	targetID, err := paramID(c, param)
	if err != nil {
		return err
	}
	if err := exists(c.Context(), targetID); err != nil {
		return notFoundOr(err, targetType+" not found")
	}

	result, err := h.toggle(c.Context(), targetType, targetID, user.ID)
	if err != nil {
		return err
	}

	message := "like removed successfully"
	if result.IsLiked {
		message = "liked successfully"
	}
	return dto.OK(c, result, message)
}

// ToggleVideo handles POST /likes/toggle/v/:videoId.
//
// @Summary Toggle a like on a video
// @Tags likes
// @Produce json
// @Param videoId path string true "video id"
// @Success 200 {object} dto.ApiResponse
// @Router /likes/toggle/v/{videoId} [post]
func (h *LikeHandler) ToggleVideo(c *fiber.Ctx) error {
	return h.toggleHandler(c, model.TargetVideo, "videoId", func(ctx context.Context, id bson.ObjectID) error {
		_, err := h.Videos.FindByID(ctx, id)
		return err
	})
}

// ToggleComment handles POST /likes/toggle/c/:commentId.
func (h *LikeHandler) ToggleComment(c *fiber.Ctx) error {
	return h.toggleHandler(c, model.TargetComment, "commentId", func(ctx context.Context, id bson.ObjectID) error {
		_, err := h.Comms.FindByID(ctx, id)
		return err
	})
}

// ToggleTweet handles POST /likes/toggle/t/:tweetId.
func (h *LikeHandler) ToggleTweet(c *fiber.Ctx) error {
	return h.toggleHandler(c, model.TargetTweet, "tweetId", func(ctx context.Context, id bson.ObjectID) error {
		_, err := h.Tweets.FindByID(ctx, id)
		return err
	})
}

// LikedVideos handles GET /likes/videos.
func (h *LikeHandler) LikedVideos(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	items, err := h.Likes.LikedVideos(c.Context(), user.ID)
	if err != nil {
		return dto.Internal(err.Error())
	}

	message := "liked videos fetched successfully"
	if len(items) == 0 {
		message = "no liked videos found"
	}
	return dto.OK(c, items, message)
}
