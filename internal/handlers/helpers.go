package handlers

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/configs"
	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/repository"
	"github.com/vidtube/backend/model"
)

// paramID parses a path parameter as an object id, 400 on malformed input.
func paramID(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return bson.NilObjectID, dto.BadRequest("invalid " + name)
	}
	return id, nil
}

// pageParams reads page/limit query params, falling back to the documented
// defaults when absent or non-numeric.
func pageParams(c *fiber.Ctx) (int64, int64) {
	page := int64(c.QueryInt("page", configs.DefaultPage))
	limit := int64(c.QueryInt("limit", configs.DefaultLimit))
	return repository.NormalizePage(page, limit)
}

// uploadFormFile streams one multipart file to the media store.
func uploadFormFile(ctx context.Context, media MediaStore, folder string, fh *multipart.FileHeader) (model.MediaAsset, error) {
	f, err := fh.Open()
	if err != nil {
		return model.MediaAsset{}, dto.BadRequest("could not read uploaded file")
	}
	defer f.Close()

	asset, err := media.Upload(ctx, folder, fh.Filename, f)
	if err != nil {
		return model.MediaAsset{}, dto.Internal("media upload failed")
	}
	return asset, nil
}

// notFoundOr maps the repository's missing-document sentinel onto a 404 and
// everything else onto a 500, keeping the taxonomy in one place.
func notFoundOr(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return dto.NotFound(message)
	}
	return dto.Internal(err.Error())
}
