package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vidtube/backend/configs"
	"github.com/vidtube/backend/dto"
)

// NormalizePage clamps page/limit to sane positive values, applying the
// documented defaults when absent or non-numeric.
func NormalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = configs.DefaultPage
	}
	if limit < 1 {
		limit = configs.DefaultLimit
	}
	if limit > configs.MaxLimit {
		limit = configs.MaxLimit
	}
	return page, limit
}

// paginate appends a $facet stage that fetches one page of documents and the
// total count in a single server round-trip. A page past the end comes back
// as an empty page, never an error.
func paginate[T any](ctx context.Context, col *mongo.Collection, pipe mongo.Pipeline, page, limit int64) (dto.Page[T], error) {
	page, limit = NormalizePage(page, limit)

	pipe = append(pipe, bson.D{{Key: StageFacet, Value: bson.M{
		"metadata": mongo.Pipeline{
			{{Key: StageCount, Value: "total"}},
		},
		"docs": mongo.Pipeline{
			{{Key: StageSkip, Value: (page - 1) * limit}},
			{{Key: StageLimit, Value: limit}},
		},
	}}})

	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := col.Aggregate(ctx, pipe)
	if err != nil {
		return dto.Page[T]{}, err
	}
	defer cur.Close(ctx)

	var out []struct {
		Metadata []struct {
			Total int64 `bson:"total"`
		} `bson:"metadata"`
		Docs []T `bson:"docs"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return dto.Page[T]{}, err
	}

	var docs []T
	var total int64
	if len(out) > 0 {
		docs = out[0].Docs
		if len(out[0].Metadata) > 0 {
			total = out[0].Metadata[0].Total
		}
	}
	return dto.NewPage(docs, total, page, limit), nil
}
