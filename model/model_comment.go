package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Content   string        `json:"content" bson:"content"`
	VideoID   bson.ObjectID `json:"videoId" bson:"video_id"`
	Owner     bson.ObjectID `json:"owner" bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

// CommentView is a comment row with owner profile and like fields computed
// by the listing pipeline.
type CommentView struct {
	ID         bson.ObjectID `json:"id" bson:"_id"`
	Content    string        `json:"content" bson:"content"`
	CreatedAt  time.Time     `json:"createdAt" bson:"created_at"`
	Owner      OwnerProfile  `json:"owner" bson:"owner_details"`
	LikesCount int64         `json:"likesCount" bson:"likes_count"`
	IsLiked    bool          `json:"isLiked" bson:"is_liked"`
}
