// Package repository implements the mongo persistence layer. Repositories
// hold their collection, take a context on every call, and express joins as
// aggregation pipelines executed by the server.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	// ErrNotFound is returned when a referenced document is absent.
	ErrNotFound = errors.New("document not found")
	// ErrConflict is returned when a unique constraint rejected a write.
	ErrConflict = errors.New("document already exists")
)

// Mongo aggregation stage and lookup keywords.
const (
	StageMatch     = "$match"
	StageLookup    = "$lookup"
	StageUnwind    = "$unwind"
	StageAddFields = "$addFields"
	StageProject   = "$project"
	StageSort      = "$sort"
	StageSkip      = "$skip"
	StageLimit     = "$limit"
	StageCount     = "$count"
	StageFacet     = "$facet"
	StageGroup     = "$group"

	KeyFrom         = "from"
	KeyLocalField   = "localField"
	KeyForeignField = "foreignField"
	KeyAs           = "as"
	KeyPipeline     = "pipeline"
	KeyLet          = "let"
)

const opTimeout = 10 * time.Second

// opCtx bounds a storage round-trip. The parent is the request context, so
// client disconnects still cancel the call early.
func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// isDup reports whether err is a unique-index violation (code 11000).
func isDup(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return mongo.IsDuplicateKeyError(err)
}

// ownerLookup joins the owning user's public profile under `as`.
func ownerLookup(localField, as string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "users",
			KeyLocalField:   localField,
			KeyForeignField: "_id",
			KeyAs:           as,
			KeyPipeline: mongo.Pipeline{
				{{Key: StageProject, Value: bson.M{
					"username":  1,
					"full_name": 1,
					"avatar":    1,
				}}},
			},
		}}},
		{{Key: StageUnwind, Value: bson.M{
			"path":                       "$" + as,
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}
