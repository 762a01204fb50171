package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/authctx"
	"github.com/vidtube/backend/model"
)

type TweetHandler struct {
	Tweets TweetStore
	Likes  LikeStore
}

// Create handles POST /tweets.
func (h *TweetHandler) Create(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	var req dto.CreateTweetRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest("invalid request body")
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return dto.BadRequest("content is required")
	}

	tweet, err := h.Tweets.Create(c.Context(), user.ID, req.Content)
	if err != nil {
		return dto.Internal(err.Error())
	}
	return dto.Created(c, tweet, "tweet created successfully")
}

// ByUser handles GET /tweets/user/:userId.
func (h *TweetHandler) ByUser(c *fiber.Ctx) error {
	owner, err := paramID(c, "userId")
	if err != nil {
		return err
	}
	viewer, _ := authctx.UserIDFrom(c)

	tweets, err := h.Tweets.ByUser(c.Context(), owner, viewer)
	if err != nil {
		return dto.Internal(err.Error())
	}

	message := "tweets fetched successfully"
	if len(tweets) == 0 {
		message = "no tweets found"
	}
	return dto.OK(c, tweets, message)
}

// Update handles PATCH /tweets/:tweetId.
func (h *TweetHandler) Update(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	tweetID, err := paramID(c, "tweetId")
	if err != nil {
		return err
	}

	var req dto.UpdateTweetRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest("invalid request body")
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return dto.BadRequest("content is required")
	}

	tweet, err := h.Tweets.FindByID(c.Context(), tweetID)
	if err != nil {
		return notFoundOr(err, "tweet not found")
	}
	if !authctx.CanMutate(user.ID, tweet.Owner) {
		return dto.Forbidden("only the owner can update this tweet")
	}

	updated, err := h.Tweets.UpdateContent(c.Context(), tweetID, req.Content)
	if err != nil {
		return notFoundOr(err, "tweet not found")
	}
	return dto.OK(c, updated, "tweet updated successfully")
}

// Delete handles DELETE /tweets/:tweetId, cleaning up likes on the tweet.
func (h *TweetHandler) Delete(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	tweetID, err := paramID(c, "tweetId")
	if err != nil {
		return err
	}

	tweet, err := h.Tweets.FindByID(c.Context(), tweetID)
	if err != nil {
		return notFoundOr(err, "tweet not found")
	}
	if !authctx.CanMutate(user.ID, tweet.Owner) {
		return dto.Forbidden("only the owner can delete this tweet")
	}

	// Dependents first, the tweet document last.
	if err := h.Likes.DeleteByTargets(c.Context(), model.TargetTweet, []bson.ObjectID{tweetID}); err != nil {
		return dto.Internal(err.Error())
	}
	if err := h.Tweets.Delete(c.Context(), tweetID); err != nil {
		return notFoundOr(err, "tweet not found")
	}
	return dto.OK(c, nil, "tweet deleted successfully")
}
