package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like target kinds. A like points at exactly one of these.
const (
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetTweet   = "tweet"
)

// Like is a tagged join record: (target_type, target_id, liked_by) is unique,
// enforced by an index (see bootstrap).
type Like struct {
	ID         bson.ObjectID `json:"id" bson:"_id,omitempty"`
	TargetType string        `json:"targetType" bson:"target_type"`
	TargetID   bson.ObjectID `json:"targetId" bson:"target_id"`
	LikedBy    bson.ObjectID `json:"likedBy" bson:"liked_by"`
	CreatedAt  time.Time     `json:"createdAt" bson:"created_at"`
}

// LikedVideoItem is one row of the liked-videos pipeline: the like flattened
// into its video, owner profile joined.
type LikedVideoItem struct {
	ID      bson.ObjectID `json:"likeId" bson:"_id"`
	LikedAt time.Time     `json:"likedAt" bson:"created_at"`
	Video   VideoFeedItem `json:"video" bson:"video"`
}
