package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription links a subscriber to a channel (both users). The
// (channel, subscriber) pair is unique, enforced by an index.
type Subscription struct {
	ID         bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Channel    bson.ObjectID `json:"channel" bson:"channel"`
	Subscriber bson.ObjectID `json:"subscriber" bson:"subscriber"`
	CreatedAt  time.Time     `json:"createdAt" bson:"created_at"`
}
