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

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("comments")}
}

func (r *CommentRepository) Create(ctx context.Context, videoID, owner bson.ObjectID, content string) (model.Comment, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	comment := model.Comment{
		Content:   content,
		VideoID:   videoID,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.col.InsertOne(ctx, comment)
	if err != nil {
		return model.Comment{}, err
	}
	comment.ID = res.InsertedID.(bson.ObjectID)
	return comment, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var comment model.Comment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Comment{}, ErrNotFound
	}
	return comment, err
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var comment model.Comment
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Comment{}, ErrNotFound
	}
	return comment, err
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
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

// IDsByVideo lists comment ids for a video, used by the cascade delete to
// clean up likes pointing at them.
func (r *CommentRepository) IDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"video_id": videoID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]bson.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"video_id": videoID})
	return err
}

// ListByVideo pages through a video's comments, newest first, with the owner
// profile and like state for the viewer computed in the pipeline.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID, viewer bson.ObjectID, page, limit int64) (dto.Page[model.CommentView], error) {
	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"video_id": videoID}}},
		{{Key: StageSort, Value: bson.D{{Key: "created_at", Value: -1}}}},
	}
	pipe = append(pipe, ownerLookup("owner", "owner_details")...)
	pipe = append(pipe,
		bson.D{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "likes",
			KeyLocalField:   "_id",
			KeyForeignField: "target_id",
			KeyAs:           "like_details",
			KeyPipeline: mongo.Pipeline{
				{{Key: StageMatch, Value: bson.M{"target_type": model.TargetComment}}},
				{{Key: StageProject, Value: bson.M{"liked_by": 1}}},
			},
		}}},
		bson.D{{Key: StageAddFields, Value: bson.M{
			"likes_count": bson.M{"$size": "$like_details"},
			"is_liked":    bson.M{"$in": bson.A{viewer, "$like_details.liked_by"}},
		}}},
		bson.D{{Key: StageProject, Value: bson.M{
			"content":       1,
			"created_at":    1,
			"owner_details": 1,
			"likes_count":   1,
			"is_liked":      1,
		}}},
	)

	return paginate[model.CommentView](ctx, r.col, pipe, page, limit)
}
