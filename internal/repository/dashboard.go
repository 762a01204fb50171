package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/vidtube/backend/model"
)

type DashboardRepository struct {
	videos        *mongo.Collection
	subscriptions *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{
		videos:        db.Collection("videos"),
		subscriptions: db.Collection("subscriptions"),
	}
}

// Stats aggregates the channel dashboard numbers. The subscriber count and
// the video rollup are independent queries, so they run concurrently.
func (r *DashboardRepository) Stats(ctx context.Context, channel bson.ObjectID) (model.ChannelStats, error) {
	var stats model.ChannelStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ctx, cancel := opCtx(gctx)
		defer cancel()

		n, err := r.subscriptions.CountDocuments(ctx, bson.M{"channel": channel})
		if err != nil {
			return err
		}
		stats.TotalSubscribers = n
		return nil
	})

	g.Go(func() error {
		pipe := mongo.Pipeline{
			{{Key: StageMatch, Value: bson.M{"owner": channel}}},
			{{Key: StageLookup, Value: bson.M{
				KeyFrom:         "likes",
				KeyLocalField:   "_id",
				KeyForeignField: "target_id",
				KeyAs:           "likes",
				KeyPipeline: mongo.Pipeline{
					{{Key: StageMatch, Value: bson.M{"target_type": model.TargetVideo}}},
				},
			}}},
			{{Key: StageGroup, Value: bson.M{
				"_id":          nil,
				"total_videos": bson.M{"$sum": 1},
				"total_views":  bson.M{"$sum": "$views"},
				"total_likes":  bson.M{"$sum": bson.M{"$size": "$likes"}},
			}}},
		}

		ctx, cancel := opCtx(gctx)
		defer cancel()

		cur, err := r.videos.Aggregate(ctx, pipe)
		if err != nil {
			return err
		}
		defer cur.Close(ctx)

		var rows []struct {
			TotalVideos int64 `bson:"total_videos"`
			TotalViews  int64 `bson:"total_views"`
			TotalLikes  int64 `bson:"total_likes"`
		}
		if err := cur.All(ctx, &rows); err != nil {
			return err
		}
		if len(rows) > 0 {
			stats.TotalVideos = rows[0].TotalVideos
			stats.TotalViews = rows[0].TotalViews
			stats.TotalLikes = rows[0].TotalLikes
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.ChannelStats{}, err
	}
	return stats, nil
}

// ChannelVideos lists every video the channel owns, published or not, with
// like totals, newest first.
func (r *DashboardRepository) ChannelVideos(ctx context.Context, channel bson.ObjectID) ([]model.ChannelVideoItem, error) {
	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"owner": channel}}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "likes",
			KeyLocalField:   "_id",
			KeyForeignField: "target_id",
			KeyAs:           "likes",
			KeyPipeline: mongo.Pipeline{
				{{Key: StageMatch, Value: bson.M{"target_type": model.TargetVideo}}},
			},
		}}},
		{{Key: StageAddFields, Value: bson.M{
			"likes_count": bson.M{"$size": "$likes"},
		}}},
		{{Key: StageSort, Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: StageProject, Value: bson.M{
			"thumbnail":    1,
			"title":        1,
			"description":  1,
			"views":        1,
			"is_published": 1,
			"likes_count":  1,
			"created_at":   1,
		}}},
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := r.videos.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.ChannelVideoItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
