package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vidtube/backend/model"
)

type LikeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{col: db.Collection("likes")}
}

func likeFilter(targetType string, targetID, likedBy bson.ObjectID) bson.M {
	return bson.M{
		"target_type": targetType,
		"target_id":   targetID,
		"liked_by":    likedBy,
	}
}

// Remove deletes the (target, user) like if present and reports whether one
// was deleted.
func (r *LikeRepository) Remove(ctx context.Context, targetType string, targetID, likedBy bson.ObjectID) (bool, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, likeFilter(targetType, targetID, likedBy))
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

// Add inserts the like. A duplicate-key failure means a concurrent request
// already created it; that is reported as dup, not an error, so the toggle
// still converges on "liked".
func (r *LikeRepository) Add(ctx context.Context, targetType string, targetID, likedBy bson.ObjectID) (dup bool, err error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	_, err = r.col.InsertOne(ctx, model.Like{
		TargetType: targetType,
		TargetID:   targetID,
		LikedBy:    likedBy,
		CreatedAt:  time.Now().UTC(),
	})
	if err == nil {
		return false, nil
	}
	if isDup(err) {
		return true, nil
	}
	return false, err
}

// Count returns the number of persisted likes for a target.
func (r *LikeRepository) Count(ctx context.Context, targetType string, targetID bson.ObjectID) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{
		"target_type": targetType,
		"target_id":   targetID,
	})
}

// DeleteByTargets removes every like pointing at the given targets, used by
// cascade deletes.
func (r *LikeRepository) DeleteByTargets(ctx context.Context, targetType string, targetIDs []bson.ObjectID) error {
	if len(targetIDs) == 0 {
		return nil
	}
	ctx, cancel := opCtx(ctx)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{
		"target_type": targetType,
		"target_id":   bson.M{"$in": targetIDs},
	})
	return err
}

// LikedVideos resolves the user's video likes to the videos themselves with
// owner profiles, newest like first. Likes whose video has since been
// deleted are dropped by the unwind.
func (r *LikeRepository) LikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]model.LikedVideoItem, error) {
	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{
			"liked_by":    likedBy,
			"target_type": model.TargetVideo,
		}}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "videos",
			KeyLocalField:   "target_id",
			KeyForeignField: "_id",
			KeyAs:           "video",
			KeyPipeline: append(mongo.Pipeline{
				{{Key: StageMatch, Value: bson.M{"is_published": true}}},
			}, ownerLookup("owner", "owner_details")...),
		}}},
		{{Key: StageUnwind, Value: bson.M{"path": "$video"}}},
		{{Key: StageSort, Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: StageProject, Value: bson.M{
			"created_at": 1,
			"video":      1,
		}}},
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.LikedVideoItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
