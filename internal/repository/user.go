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

type UserRepository struct {
	col    *mongo.Collection
	videos *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		col:    db.Collection("users"),
		videos: db.Collection("videos"),
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.WatchHistory == nil {
		user.WatchHistory = []bson.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if isDup(err) {
			return model.User{}, ErrConflict
		}
		return model.User{}, err
	}
	user.ID = res.InsertedID.(bson.ObjectID)
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var user model.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return user, err
}

// FindByUsernameOrEmail matches either credential; login accepts both.
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"username": username},
		{"email": email},
	}}
	var user model.User
	err := r.col.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return user, err
}

func (r *UserRepository) update(ctx context.Context, id bson.ObjectID, set bson.M) (model.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	set["updated_at"] = time.Now().UTC()
	var user model.User
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return user, err
}

func (r *UserRepository) UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) (model.User, error) {
	set := bson.M{}
	if fullName != "" {
		set["full_name"] = fullName
	}
	if email != "" {
		set["email"] = email
	}
	return r.update(ctx, id, set)
}

func (r *UserRepository) SetAvatar(ctx context.Context, id bson.ObjectID, asset model.MediaAsset) (model.User, error) {
	return r.update(ctx, id, bson.M{"avatar": asset})
}

func (r *UserRepository) SetCoverImage(ctx context.Context, id bson.ObjectID, asset model.MediaAsset) (model.User, error) {
	return r.update(ctx, id, bson.M{"cover_image": asset})
}

func (r *UserRepository) SetPassword(ctx context.Context, id bson.ObjectID, hash string) error {
	_, err := r.update(ctx, id, bson.M{"password": hash})
	return err
}

// SetRefreshToken stores the current refresh credential; an empty value
// clears it (logout).
func (r *UserRepository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{"refresh_token": token}}
	if token == "" {
		update = bson.M{"$unset": bson.M{"refresh_token": 1}}
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordWatch prepends the video to the user's watch history, deduplicated,
// most recent first.
func (r *UserRepository) RecordWatch(ctx context.Context, userID, videoID bson.ObjectID) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	if _, err := r.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"watch_history": videoID}},
	); err != nil {
		return err
	}
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"watch_history": bson.M{
			"$each":     []bson.ObjectID{videoID},
			"$position": 0,
		}}},
	)
	return err
}

// ChannelProfile aggregates the public channel page: subscriber counts and
// whether the viewer is subscribed.
func (r *UserRepository) ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (model.ChannelProfile, error) {
	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"username": username}}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "subscriptions",
			KeyLocalField:   "_id",
			KeyForeignField: "channel",
			KeyAs:           "subscribers",
		}}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "subscriptions",
			KeyLocalField:   "_id",
			KeyForeignField: "subscriber",
			KeyAs:           "subscribed_to",
		}}},
		{{Key: StageAddFields, Value: bson.M{
			"subscriber_count":    bson.M{"$size": "$subscribers"},
			"subscribed_to_count": bson.M{"$size": "$subscribed_to"},
			"is_subscribed": bson.M{"$in": bson.A{
				viewer, "$subscribers.subscriber",
			}},
		}}},
		{{Key: StageProject, Value: bson.M{
			"username":            1,
			"full_name":           1,
			"avatar":              1,
			"cover_image":         1,
			"subscriber_count":    1,
			"subscribed_to_count": 1,
			"is_subscribed":       1,
		}}},
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, pipe)
	if err != nil {
		return model.ChannelProfile{}, err
	}
	defer cur.Close(ctx)

	var profiles []model.ChannelProfile
	if err := cur.All(ctx, &profiles); err != nil {
		return model.ChannelProfile{}, err
	}
	if len(profiles) == 0 {
		return model.ChannelProfile{}, ErrNotFound
	}
	return profiles[0], nil
}

// WatchHistory resolves the user's history to feed items, keeping the
// stored most-recent-first order. The join happens server-side; ordering is
// restored here because $lookup does not preserve input order.
func (r *UserRepository) WatchHistory(ctx context.Context, user model.User) ([]model.VideoFeedItem, error) {
	if len(user.WatchHistory) == 0 {
		return []model.VideoFeedItem{}, nil
	}

	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"_id": bson.M{"$in": user.WatchHistory}}}},
	}
	pipe = append(pipe, ownerLookup("owner", "owner_details")...)

	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := r.videos.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []model.VideoFeedItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}

	byID := make(map[bson.ObjectID]model.VideoFeedItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	ordered := make([]model.VideoFeedItem, 0, len(items))
	for _, id := range user.WatchHistory {
		if it, ok := byID[id]; ok {
			ordered = append(ordered, it)
		}
	}
	return ordered, nil
}
