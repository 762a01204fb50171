package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vidtube/backend/model"
)

type TweetRepository struct {
	col *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{col: db.Collection("tweets")}
}

func (r *TweetRepository) Create(ctx context.Context, owner bson.ObjectID, content string) (model.Tweet, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	tweet := model.Tweet{
		Content:   content,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.col.InsertOne(ctx, tweet)
	if err != nil {
		return model.Tweet{}, err
	}
	tweet.ID = res.InsertedID.(bson.ObjectID)
	return tweet, nil
}

func (r *TweetRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.Tweet, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var tweet model.Tweet
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&tweet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Tweet{}, ErrNotFound
	}
	return tweet, err
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Tweet, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var tweet model.Tweet
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&tweet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Tweet{}, ErrNotFound
	}
	return tweet, err
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
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

// ByUser lists a user's tweets newest first, with like totals and the
// viewer's like state.
func (r *TweetRepository) ByUser(ctx context.Context, owner, viewer bson.ObjectID) ([]model.TweetView, error) {
	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"owner": owner}}},
	}
	pipe = append(pipe, ownerLookup("owner", "owner_details")...)
	pipe = append(pipe,
		bson.D{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "likes",
			KeyLocalField:   "_id",
			KeyForeignField: "target_id",
			KeyAs:           "like_details",
			KeyPipeline: mongo.Pipeline{
				{{Key: StageMatch, Value: bson.M{"target_type": model.TargetTweet}}},
				{{Key: StageProject, Value: bson.M{"liked_by": 1}}},
			},
		}}},
		bson.D{{Key: StageAddFields, Value: bson.M{
			"likes_count": bson.M{"$size": "$like_details"},
			"is_liked":    bson.M{"$in": bson.A{viewer, "$like_details.liked_by"}},
		}}},
		bson.D{{Key: StageSort, Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: StageProject, Value: bson.M{
			"content":       1,
			"created_at":    1,
			"owner_details": 1,
			"likes_count":   1,
			"is_liked":      1,
		}}},
	)

	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	views := []model.TweetView{}
	if err := cur.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil
}
