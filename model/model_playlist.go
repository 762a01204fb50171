package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Playlist keeps videos with set semantics: adds go through $addToSet so a
// video appears at most once.
type Playlist struct {
	ID          bson.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name        string          `json:"name" bson:"name"`
	Description string          `json:"description" bson:"description"`
	Owner       bson.ObjectID   `json:"owner" bson:"owner"`
	Videos      []bson.ObjectID `json:"videos" bson:"videos"`
	CreatedAt   time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" bson:"updated_at"`
}

// PlaylistSummary is one row of the per-user playlist listing.
type PlaylistSummary struct {
	ID          bson.ObjectID `json:"id" bson:"_id"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description" bson:"description"`
	Owner       OwnerProfile  `json:"owner" bson:"owner_details"`
	Thumbnail   MediaAsset    `json:"thumbnail" bson:"thumbnail"`
	VideoCount  int64         `json:"videoCount" bson:"video_count"`
	TotalViews  int64         `json:"totalViews" bson:"total_views"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updated_at"`
}

// PlaylistDetail is the full playlist with published videos expanded.
type PlaylistDetail struct {
	ID          bson.ObjectID   `json:"id" bson:"_id"`
	Name        string          `json:"name" bson:"name"`
	Description string          `json:"description" bson:"description"`
	Owner       OwnerProfile    `json:"owner" bson:"owner_details"`
	Videos      []VideoFeedItem `json:"videos" bson:"video_details"`
	VideoCount  int64           `json:"videoCount" bson:"video_count"`
	TotalViews  int64           `json:"totalViews" bson:"total_views"`
	CreatedAt   time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" bson:"updated_at"`
}
