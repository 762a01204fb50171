package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MediaAsset is a file stored in the object store. Key is what we delete by,
// URL is what clients render.
type MediaAsset struct {
	URL string `json:"url" bson:"url"`
	Key string `json:"key,omitempty" bson:"key,omitempty"`
}

type User struct {
	ID           bson.ObjectID   `json:"id" bson:"_id,omitempty"`
	Username     string          `json:"username" bson:"username"`
	Email        string          `json:"email" bson:"email"`
	FullName     string          `json:"fullName" bson:"full_name"`
	Avatar       MediaAsset      `json:"avatar" bson:"avatar"`
	CoverImage   MediaAsset      `json:"coverImage" bson:"cover_image"`
	Password     string          `json:"-" bson:"password"`
	WatchHistory []bson.ObjectID `json:"watchHistory" bson:"watch_history"`
	RefreshToken string          `json:"-" bson:"refresh_token,omitempty"`
	CreatedAt    time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" bson:"updated_at"`
}

// OwnerProfile is the public slice of a user joined into feeds, comments,
// tweets and playlists.
type OwnerProfile struct {
	ID       bson.ObjectID `json:"id" bson:"_id"`
	Username string        `json:"username" bson:"username"`
	FullName string        `json:"fullName" bson:"full_name"`
	Avatar   MediaAsset    `json:"avatar" bson:"avatar"`
}

// ChannelProfile is the aggregation result for GET /users/c/:username.
type ChannelProfile struct {
	ID              bson.ObjectID `json:"id" bson:"_id"`
	Username        string        `json:"username" bson:"username"`
	FullName        string        `json:"fullName" bson:"full_name"`
	Avatar          MediaAsset    `json:"avatar" bson:"avatar"`
	CoverImage      MediaAsset    `json:"coverImage" bson:"cover_image"`
	SubscriberCount int64         `json:"subscriberCount" bson:"subscriber_count"`
	SubscribedTo    int64         `json:"subscribedToCount" bson:"subscribed_to_count"`
	IsSubscribed    bool          `json:"isSubscribed" bson:"is_subscribed"`
}
