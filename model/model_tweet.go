package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Tweet struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Content   string        `json:"content" bson:"content"`
	Owner     bson.ObjectID `json:"owner" bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

type TweetView struct {
	ID         bson.ObjectID `json:"id" bson:"_id"`
	Content    string        `json:"content" bson:"content"`
	CreatedAt  time.Time     `json:"createdAt" bson:"created_at"`
	Owner      OwnerProfile  `json:"owner" bson:"owner_details"`
	LikesCount int64         `json:"likesCount" bson:"likes_count"`
	IsLiked    bool          `json:"isLiked" bson:"is_liked"`
}
