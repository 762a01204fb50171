package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vidtube/backend/model"
)

type SubscriptionRepository struct {
	col *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{col: db.Collection("subscriptions")}
}

// Remove drops the (channel, subscriber) pair if present.
func (r *SubscriptionRepository) Remove(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"channel": channel, "subscriber": subscriber})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

// Add inserts the pair; the unique index absorbs concurrent duplicates the
// same way the like toggle does.
func (r *SubscriptionRepository) Add(ctx context.Context, channel, subscriber bson.ObjectID) (dup bool, err error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	_, err = r.col.InsertOne(ctx, model.Subscription{
		Channel:    channel,
		Subscriber: subscriber,
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

func (r *SubscriptionRepository) CountForChannel(ctx context.Context, channel bson.ObjectID) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"channel": channel})
}

func (r *SubscriptionRepository) listProfiles(ctx context.Context, match bson.M, localField string) ([]model.OwnerProfile, error) {
	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: match}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "users",
			KeyLocalField:   localField,
			KeyForeignField: "_id",
			KeyAs:           "profile",
			KeyPipeline: mongo.Pipeline{
				{{Key: StageProject, Value: bson.M{
					"username":  1,
					"full_name": 1,
					"avatar":    1,
				}}},
			},
		}}},
		{{Key: StageUnwind, Value: bson.M{"path": "$profile"}}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$profile"}}},
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	profiles := []model.OwnerProfile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// SubscribersOf lists the profiles subscribed to a channel.
func (r *SubscriptionRepository) SubscribersOf(ctx context.Context, channel bson.ObjectID) ([]model.OwnerProfile, error) {
	return r.listProfiles(ctx, bson.M{"channel": channel}, "subscriber")
}

// ChannelsOf lists the channels a user is subscribed to.
func (r *SubscriptionRepository) ChannelsOf(ctx context.Context, subscriber bson.ObjectID) ([]model.OwnerProfile, error) {
	return r.listProfiles(ctx, bson.M{"subscriber": subscriber}, "channel")
}
