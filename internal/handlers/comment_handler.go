package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/authctx"
	"github.com/vidtube/backend/model"
)

type CommentHandler struct {
	Comments CommentStore
	Videos   VideoStore
	Likes    LikeStore
}

// List handles GET /comments/:videoId with page/limit params. An empty page
// is a successful response, not an error.
func (h *CommentHandler) List(c *fiber.Ctx) error {
	videoID, err := paramID(c, "videoId")
	if err != nil {
		return err
	}
	page, limit := pageParams(c)
	viewer, _ := authctx.UserIDFrom(c)

	result, err := h.Comments.ListByVideo(c.Context(), videoID, viewer, page, limit)
	if err != nil {
		return dto.Internal(err.Error())
	}

	message := "comments fetched successfully"
	if len(result.Docs) == 0 {
		message = "no comments found"
	}
	return dto.OK(c, result, message)
}

// Create handles POST /comments/:videoId.
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	videoID, err := paramID(c, "videoId")
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest("invalid request body")
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return dto.BadRequest("content is required")
	}

	if _, err := h.Videos.FindByID(c.Context(), videoID); err != nil {
		return notFoundOr(err, "video not found")
	}

	comment, err := h.Comments.Create(c.Context(), videoID, user.ID, req.Content)
	if err != nil {
		return dto.Internal(err.Error())
	}
	return dto.Created(c, comment, "comment added successfully")
}

// Update handles PATCH /comments/c/:commentId.
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	commentID, err := paramID(c, "commentId")
	if err != nil {
		return err
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest("invalid request body")
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return dto.BadRequest("content is required")
	}

	comment, err := h.Comments.FindByID(c.Context(), commentID)
	if err != nil {
		return notFoundOr(err, "comment not found")
	}
	if !authctx.CanMutate(user.ID, comment.Owner) {
		return dto.Forbidden("only the owner can update this comment")
	}

	updated, err := h.Comments.UpdateContent(c.Context(), commentID, req.Content)
	if err != nil {
		return notFoundOr(err, "comment not found")
	}
	return dto.OK(c, updated, "comment updated successfully")
}

// Delete handles DELETE /comments/c/:commentId, cleaning up likes that
// reference the comment.
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	commentID, err := paramID(c, "commentId")
	if err != nil {
		return err
	}

	comment, err := h.Comments.FindByID(c.Context(), commentID)
	if err != nil {
		return notFoundOr(err, "comment not found")
	}
	if !authctx.CanMutate(user.ID, comment.Owner) {
		return dto.Forbidden("only the owner can delete this comment")
	}

	// Dependents first, the comment document last.
	if err := h.Likes.DeleteByTargets(c.Context(), model.TargetComment, []bson.ObjectID{commentID}); err != nil {
		return dto.Internal(err.Error())
	}
	if err := h.Comments.Delete(c.Context(), commentID); err != nil {
		return notFoundOr(err, "comment not found")
	}
	return dto.OK(c, nil, "comment deleted successfully")
}
