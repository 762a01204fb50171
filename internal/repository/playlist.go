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

type PlaylistRepository struct {
	col *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{col: db.Collection("playlists")}
}

func (r *PlaylistRepository) Create(ctx context.Context, owner bson.ObjectID, name, description string) (model.Playlist, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	playlist := model.Playlist{
		Name:        name,
		Description: description,
		Owner:       owner,
		Videos:      []bson.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	res, err := r.col.InsertOne(ctx, playlist)
	if err != nil {
		return model.Playlist{}, err
	}
	playlist.ID = res.InsertedID.(bson.ObjectID)
	return playlist, nil
}

func (r *PlaylistRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var playlist model.Playlist
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Playlist{}, ErrNotFound
	}
	return playlist, err
}

func (r *PlaylistRepository) Update(ctx context.Context, id bson.ObjectID, name, description string) (model.Playlist, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if name != "" {
		set["name"] = name
	}
	if description != "" {
		set["description"] = description
	}
	var playlist model.Playlist
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Playlist{}, ErrNotFound
	}
	return playlist, err
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
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

// AddVideo inserts with set semantics: adding a video already present is a
// no-op, so the operation is idempotent.
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error) {
	return r.updateVideos(ctx, playlistID, bson.M{"$addToSet": bson.M{"videos": videoID}})
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error) {
	return r.updateVideos(ctx, playlistID, bson.M{"$pull": bson.M{"videos": videoID}})
}

func (r *PlaylistRepository) updateVideos(ctx context.Context, playlistID bson.ObjectID, update bson.M) (model.Playlist, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	update["$set"] = bson.M{"updated_at": time.Now().UTC()}
	var playlist model.Playlist
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": playlistID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Playlist{}, ErrNotFound
	}
	return playlist, err
}

func playlistRollupFields() bson.M {
	return bson.M{
		"thumbnail":   bson.M{"$first": "$video_details.thumbnail"},
		"video_count": bson.M{"$size": "$video_details"},
		"total_views": bson.M{"$sum": "$video_details.views"},
	}
}

// ByUser lists a user's playlists as summaries: first thumbnail, video
// count and total views rolled up from the joined videos.
func (r *PlaylistRepository) ByUser(ctx context.Context, owner bson.ObjectID) ([]model.PlaylistSummary, error) {
	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"owner": owner}}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "videos",
			KeyLocalField:   "videos",
			KeyForeignField: "_id",
			KeyAs:           "video_details",
			KeyPipeline: mongo.Pipeline{
				{{Key: StageProject, Value: bson.M{"thumbnail": 1, "views": 1}}},
			},
		}}},
	}
	pipe = append(pipe, ownerLookup("owner", "owner_details")...)
	pipe = append(pipe,
		bson.D{{Key: StageAddFields, Value: playlistRollupFields()}},
		bson.D{{Key: StageProject, Value: bson.M{
			"name":          1,
			"description":   1,
			"owner_details": 1,
			"thumbnail":     1,
			"video_count":   1,
			"total_views":   1,
			"created_at":    1,
			"updated_at":    1,
		}}},
	)

	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	summaries := []model.PlaylistSummary{}
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// DetailByID expands a playlist into its published videos with owner
// profiles.
func (r *PlaylistRepository) DetailByID(ctx context.Context, id bson.ObjectID) (model.PlaylistDetail, error) {
	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"_id": id}}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "videos",
			KeyLocalField:   "videos",
			KeyForeignField: "_id",
			KeyAs:           "video_details",
			KeyPipeline: append(mongo.Pipeline{
				{{Key: StageMatch, Value: bson.M{"is_published": true}}},
			}, ownerLookup("owner", "owner_details")...),
		}}},
	}
	pipe = append(pipe, ownerLookup("owner", "owner_details")...)
	pipe = append(pipe,
		bson.D{{Key: StageAddFields, Value: playlistRollupFields()}},
		bson.D{{Key: StageProject, Value: bson.M{
			"name":          1,
			"description":   1,
			"owner_details": 1,
			"video_details": 1,
			"video_count":   1,
			"total_views":   1,
			"created_at":    1,
			"updated_at":    1,
		}}},
	)

	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, pipe)
	if err != nil {
		return model.PlaylistDetail{}, err
	}
	defer cur.Close(ctx)

	var details []model.PlaylistDetail
	if err := cur.All(ctx, &details); err != nil {
		return model.PlaylistDetail{}, err
	}
	if len(details) == 0 {
		return model.PlaylistDetail{}, ErrNotFound
	}
	return details[0], nil
}
