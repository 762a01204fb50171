package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/model"
)

type VideoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{col: db.Collection("videos")}
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) (model.Video, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, video)
	if err != nil {
		return model.Video{}, err
	}
	video.ID = res.InsertedID.(bson.ObjectID)
	return video, nil
}

func (r *VideoRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var video model.Video
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, ErrNotFound
	}
	return video, err
}

func (r *VideoRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (model.Video, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	set["updated_at"] = time.Now().UTC()
	var video model.Video
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, ErrNotFound
	}
	return video, err
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// TogglePublish flips the publish flag in a single server-side update, so
// concurrent toggles cannot lose a flip.
func (r *VideoRepository) TogglePublish(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"is_published": bson.M{"$not": "$is_published"},
			"updated_at":   time.Now().UTC(),
		}}},
	}
	var video model.Video
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, ErrNotFound
	}
	return video, err
}

// IncrementViews bumps the monotonic view counter.
func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

var feedSortKeys = map[string]string{
	"views":     "views",
	"duration":  "duration",
	"createdAt": "created_at",
}

// List runs the feed pipeline: optional text match, optional owner filter,
// published only, sort, owner profile join, facet pagination.
func (r *VideoRepository) List(ctx context.Context, q model.VideoQuery) (dto.Page[model.VideoFeedItem], error) {
	match := bson.M{"is_published": true}
	if q.Query != "" {
		// Relies on the text index over title/description (see bootstrap).
		match["$text"] = bson.M{"$search": q.Query}
	}
	if !q.Owner.IsZero() {
		match["owner"] = q.Owner
	}

	sortKey, ok := feedSortKeys[q.SortBy]
	if !ok {
		sortKey = "created_at"
		q.SortAsc = false
	}
	dir := -1
	if q.SortAsc {
		dir = 1
	}

	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: match}},
		{{Key: StageSort, Value: bson.D{
			{Key: sortKey, Value: dir},
			{Key: "_id", Value: -1}, // stable tiebreak for paging
		}}},
	}
	pipe = append(pipe, ownerLookup("owner", "owner_details")...)
	pipe = append(pipe,
		bson.D{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "likes",
			KeyLocalField:   "_id",
			KeyForeignField: "target_id",
			KeyAs:           "like_details",
			KeyPipeline: mongo.Pipeline{
				{{Key: StageMatch, Value: bson.M{"target_type": model.TargetVideo}}},
				{{Key: StageProject, Value: bson.M{"liked_by": 1}}},
			},
		}}},
		bson.D{{Key: StageAddFields, Value: bson.M{
			"is_liked": bson.M{"$in": bson.A{q.Viewer, "$like_details.liked_by"}},
		}}},
		bson.D{{Key: StageProject, Value: bson.M{
			"video_file":    1,
			"thumbnail":     1,
			"title":         1,
			"description":   1,
			"duration":      1,
			"views":         1,
			"is_liked":      1,
			"created_at":    1,
			"owner_details": 1,
		}}},
	)

	return paginate[model.VideoFeedItem](ctx, r.col, pipe, q.Page, q.Limit)
}
