package handlers

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/model"
)

// UserStore captures the persistence operations required by the user
// handlers.
type UserStore interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error)
	UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) (model.User, error)
	SetAvatar(ctx context.Context, id bson.ObjectID, asset model.MediaAsset) (model.User, error)
	SetCoverImage(ctx context.Context, id bson.ObjectID, asset model.MediaAsset) (model.User, error)
	SetPassword(ctx context.Context, id bson.ObjectID, hash string) error
	SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error
	RecordWatch(ctx context.Context, userID, videoID bson.ObjectID) error
	ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (model.ChannelProfile, error)
	WatchHistory(ctx context.Context, user model.User) ([]model.VideoFeedItem, error)
}

// VideoStore captures persistence for video workflows.
type VideoStore interface {
	Create(ctx context.Context, video model.Video) (model.Video, error)
	FindByID(ctx context.Context, id bson.ObjectID) (model.Video, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (model.Video, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	TogglePublish(ctx context.Context, id bson.ObjectID) (model.Video, error)
	IncrementViews(ctx context.Context, id bson.ObjectID) error
	List(ctx context.Context, q model.VideoQuery) (dto.Page[model.VideoFeedItem], error)
}

// CommentStore captures persistence for comment workflows.
type CommentStore interface {
	Create(ctx context.Context, videoID, owner bson.ObjectID, content string) (model.Comment, error)
	FindByID(ctx context.Context, id bson.ObjectID) (model.Comment, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	IDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error)
	DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error
	ListByVideo(ctx context.Context, videoID, viewer bson.ObjectID, page, limit int64) (dto.Page[model.CommentView], error)
}

// LikeStore exposes the primitive like operations; the toggle orchestration
// lives in the handler so every caller gets the same race-safe discipline.
type LikeStore interface {
	Remove(ctx context.Context, targetType string, targetID, likedBy bson.ObjectID) (bool, error)
	Add(ctx context.Context, targetType string, targetID, likedBy bson.ObjectID) (dup bool, err error)
	Count(ctx context.Context, targetType string, targetID bson.ObjectID) (int64, error)
	DeleteByTargets(ctx context.Context, targetType string, targetIDs []bson.ObjectID) error
	LikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]model.LikedVideoItem, error)
}

// TweetStore captures persistence for tweet workflows.
type TweetStore interface {
	Create(ctx context.Context, owner bson.ObjectID, content string) (model.Tweet, error)
	FindByID(ctx context.Context, id bson.ObjectID) (model.Tweet, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Tweet, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	ByUser(ctx context.Context, owner, viewer bson.ObjectID) ([]model.TweetView, error)
}

// PlaylistStore captures persistence for playlist workflows.
type PlaylistStore interface {
	Create(ctx context.Context, owner bson.ObjectID, name, description string) (model.Playlist, error)
	FindByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error)
	Update(ctx context.Context, id bson.ObjectID, name, description string) (model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error)
	ByUser(ctx context.Context, owner bson.ObjectID) ([]model.PlaylistSummary, error)
	DetailByID(ctx context.Context, id bson.ObjectID) (model.PlaylistDetail, error)
}

// SubscriptionStore captures persistence for subscription workflows.
type SubscriptionStore interface {
	Remove(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error)
	Add(ctx context.Context, channel, subscriber bson.ObjectID) (dup bool, err error)
	CountForChannel(ctx context.Context, channel bson.ObjectID) (int64, error)
	SubscribersOf(ctx context.Context, channel bson.ObjectID) ([]model.OwnerProfile, error)
	ChannelsOf(ctx context.Context, subscriber bson.ObjectID) ([]model.OwnerProfile, error)
}

// DashboardStore computes channel statistics.
type DashboardStore interface {
	Stats(ctx context.Context, channel bson.ObjectID) (model.ChannelStats, error)
	ChannelVideos(ctx context.Context, channel bson.ObjectID) ([]model.ChannelVideoItem, error)
}

// WatchRecorder appends a viewed video to a user's watch history.
type WatchRecorder interface {
	RecordWatch(ctx context.Context, userID, videoID bson.ObjectID) error
}

// MediaStore is the upstream media host. Uploads must return a durable URL
// before any document references it; deletes are best-effort cleanup.
type MediaStore interface {
	Upload(ctx context.Context, folder, filename string, r io.Reader) (model.MediaAsset, error)
	Delete(ctx context.Context, asset model.MediaAsset) error
}

// TokenManager issues and verifies the access/refresh credential pair.
type TokenManager interface {
	IssueAccess(user model.User) (string, error)
	IssueRefresh(user model.User) (string, error)
	VerifyRefresh(tokenStr string) (string, error)
}
