package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Video struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	VideoFile   MediaAsset    `json:"videoFile" bson:"video_file"`
	Thumbnail   MediaAsset    `json:"thumbnail" bson:"thumbnail"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Duration    float64       `json:"duration" bson:"duration"`
	Views       int64         `json:"views" bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"is_published"`
	Owner       bson.ObjectID `json:"owner" bson:"owner"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updated_at"`
}

// VideoFeedItem is a video row from the listing pipeline with the owner
// profile already joined.
type VideoFeedItem struct {
	ID          bson.ObjectID `json:"id" bson:"_id"`
	VideoFile   MediaAsset    `json:"videoFile" bson:"video_file"`
	Thumbnail   MediaAsset    `json:"thumbnail" bson:"thumbnail"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Duration    float64       `json:"duration" bson:"duration"`
	Views       int64         `json:"views" bson:"views"`
	IsLiked     bool          `json:"isLiked" bson:"is_liked"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
	Owner       OwnerProfile  `json:"owner" bson:"owner_details"`
}

// ChannelVideoItem is a dashboard row: the channel's own videos, published
// or not, with the like total.
type ChannelVideoItem struct {
	ID          bson.ObjectID `json:"id" bson:"_id"`
	Thumbnail   MediaAsset    `json:"thumbnail" bson:"thumbnail"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Views       int64         `json:"views" bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"is_published"`
	LikesCount  int64         `json:"likesCount" bson:"likes_count"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
}

// ChannelStats is the dashboard summary for a channel.
type ChannelStats struct {
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
}

// VideoQuery are the knobs of the feed listing pipeline.
type VideoQuery struct {
	Query   string
	Owner   bson.ObjectID
	SortBy  string // views | created_at | duration
	SortAsc bool
	Page    int64
	Limit   int64
	Viewer  bson.ObjectID
}
