package handlers

import (
	"context"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/authctx"
	"github.com/vidtube/backend/internal/repository"
	"github.com/vidtube/backend/model"
)

// callLog records cross-store operations so tests can assert ordering, e.g.
// that media cleanup runs only after the video document is gone.
type callLog struct {
	calls []string
}

func (l *callLog) add(name string) {
	l.calls = append(l.calls, name)
}

// testApp wires a handler function behind a middleware that injects the given
// identity, with the production error handler installed.
func testApp(user model.User, method, path string, h fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: dto.ErrorHandler})
	app.Add(method, path, func(c *fiber.Ctx) error {
		if !user.ID.IsZero() {
			authctx.SetUser(c, user)
		}
		return c.Next()
	}, h)
	return app
}

type fakeVideoStore struct {
	videos    map[bson.ObjectID]model.Video
	log       *callLog
	page      dto.Page[model.VideoFeedItem]
	lastQuery model.VideoQuery
}

func newFakeVideoStore(log *callLog) *fakeVideoStore {
	return &fakeVideoStore{videos: map[bson.ObjectID]model.Video{}, log: log}
}

func (s *fakeVideoStore) put(v model.Video) model.Video {
	if v.ID.IsZero() {
		v.ID = bson.NewObjectID()
	}
	s.videos[v.ID] = v
	return v
}

func (s *fakeVideoStore) Create(_ context.Context, v model.Video) (model.Video, error) {
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt
	return s.put(v), nil
}

func (s *fakeVideoStore) FindByID(_ context.Context, id bson.ObjectID) (model.Video, error) {
	v, ok := s.videos[id]
	if !ok {
		return model.Video{}, repository.ErrNotFound
	}
	return v, nil
}

func (s *fakeVideoStore) Update(_ context.Context, id bson.ObjectID, set bson.M) (model.Video, error) {
	v, ok := s.videos[id]
	if !ok {
		return model.Video{}, repository.ErrNotFound
	}
	if title, ok := set["title"].(string); ok {
		v.Title = title
	}
	if description, ok := set["description"].(string); ok {
		v.Description = description
	}
	if thumb, ok := set["thumbnail"].(model.MediaAsset); ok {
		v.Thumbnail = thumb
	}
	s.videos[id] = v
	return v, nil
}

func (s *fakeVideoStore) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := s.videos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.videos, id)
	s.log.add("videos.Delete")
	return nil
}

func (s *fakeVideoStore) TogglePublish(_ context.Context, id bson.ObjectID) (model.Video, error) {
	v, ok := s.videos[id]
	if !ok {
		return model.Video{}, repository.ErrNotFound
	}
	v.IsPublished = !v.IsPublished
	s.videos[id] = v
	return v, nil
}

func (s *fakeVideoStore) IncrementViews(_ context.Context, id bson.ObjectID) error {
	v, ok := s.videos[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.Views++
	s.videos[id] = v
	return nil
}

func (s *fakeVideoStore) List(_ context.Context, q model.VideoQuery) (dto.Page[model.VideoFeedItem], error) {
	s.lastQuery = q
	page := s.page
	if page.Docs == nil {
		page.Docs = []model.VideoFeedItem{}
	}
	return page, nil
}

type likeKey struct {
	targetType string
	targetID   bson.ObjectID
	likedBy    bson.ObjectID
}

type fakeLikeStore struct {
	likes map[likeKey]bool
	log   *callLog

	// dupOnAdd simulates a concurrent insert winning between the handler's
	// Remove and Add calls.
	dupOnAdd bool
}

func newFakeLikeStore(log *callLog) *fakeLikeStore {
	return &fakeLikeStore{likes: map[likeKey]bool{}, log: log}
}

func (s *fakeLikeStore) Remove(_ context.Context, targetType string, targetID, likedBy bson.ObjectID) (bool, error) {
	k := likeKey{targetType, targetID, likedBy}
	if s.likes[k] {
		delete(s.likes, k)
		return true, nil
	}
	return false, nil
}

func (s *fakeLikeStore) Add(_ context.Context, targetType string, targetID, likedBy bson.ObjectID) (bool, error) {
	k := likeKey{targetType, targetID, likedBy}
	if s.dupOnAdd || s.likes[k] {
		s.likes[k] = true
		return true, nil
	}
	s.likes[k] = true
	return false, nil
}

func (s *fakeLikeStore) Count(_ context.Context, targetType string, targetID bson.ObjectID) (int64, error) {
	var n int64
	for k := range s.likes {
		if k.targetType == targetType && k.targetID == targetID {
			n++
		}
	}
	return n, nil
}

func (s *fakeLikeStore) DeleteByTargets(_ context.Context, targetType string, targetIDs []bson.ObjectID) error {
	s.log.add("likes.DeleteByTargets:" + targetType)
	for _, id := range targetIDs {
		for k := range s.likes {
			if k.targetType == targetType && k.targetID == id {
				delete(s.likes, k)
			}
		}
	}
	return nil
}

func (s *fakeLikeStore) LikedVideos(_ context.Context, _ bson.ObjectID) ([]model.LikedVideoItem, error) {
	return []model.LikedVideoItem{}, nil
}

type fakeCommentStore struct {
	comments map[bson.ObjectID]model.Comment
	log      *callLog
}

func newFakeCommentStore(log *callLog) *fakeCommentStore {
	return &fakeCommentStore{comments: map[bson.ObjectID]model.Comment{}, log: log}
}

func (s *fakeCommentStore) put(c model.Comment) model.Comment {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	s.comments[c.ID] = c
	return c
}

func (s *fakeCommentStore) Create(_ context.Context, videoID, owner bson.ObjectID, content string) (model.Comment, error) {
	return s.put(model.Comment{VideoID: videoID, Owner: owner, Content: content, CreatedAt: time.Now()}), nil
}

func (s *fakeCommentStore) FindByID(_ context.Context, id bson.ObjectID) (model.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return model.Comment{}, repository.ErrNotFound
	}
	return c, nil
}

func (s *fakeCommentStore) UpdateContent(_ context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return model.Comment{}, repository.ErrNotFound
	}
	c.Content = content
	s.comments[id] = c
	return c, nil
}

func (s *fakeCommentStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.log.add("comments.Delete")
	if _, ok := s.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

func (s *fakeCommentStore) IDsByVideo(_ context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error) {
	var ids []bson.ObjectID
	for id, c := range s.comments {
		if c.VideoID == videoID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *fakeCommentStore) DeleteByVideo(_ context.Context, videoID bson.ObjectID) error {
	s.log.add("comments.DeleteByVideo")
	for id, c := range s.comments {
		if c.VideoID == videoID {
			delete(s.comments, id)
		}
	}
	return nil
}

func (s *fakeCommentStore) ListByVideo(_ context.Context, _, _ bson.ObjectID, page, limit int64) (dto.Page[model.CommentView], error) {
	return dto.NewPage([]model.CommentView{}, 0, page, limit), nil
}

type fakeMediaStore struct {
	log      *callLog
	uploaded []model.MediaAsset
	deleted  []string
}

func newFakeMediaStore(log *callLog) *fakeMediaStore {
	return &fakeMediaStore{log: log}
}

func (s *fakeMediaStore) Upload(_ context.Context, folder, filename string, r io.Reader) (model.MediaAsset, error) {
	_, _ = io.Copy(io.Discard, r)
	asset := model.MediaAsset{
		URL: "https://media.test/" + folder + "/" + filename,
		Key: folder + "/" + filename,
	}
	s.uploaded = append(s.uploaded, asset)
	return asset, nil
}

func (s *fakeMediaStore) Delete(_ context.Context, asset model.MediaAsset) error {
	s.log.add("media.Delete:" + asset.Key)
	s.deleted = append(s.deleted, asset.Key)
	return nil
}

type fakeTweetStore struct {
	tweets map[bson.ObjectID]model.Tweet
	log    *callLog
}

func newFakeTweetStore(log *callLog) *fakeTweetStore {
	return &fakeTweetStore{tweets: map[bson.ObjectID]model.Tweet{}, log: log}
}

func (s *fakeTweetStore) put(tw model.Tweet) model.Tweet {
	if tw.ID.IsZero() {
		tw.ID = bson.NewObjectID()
	}
	s.tweets[tw.ID] = tw
	return tw
}

func (s *fakeTweetStore) Create(_ context.Context, owner bson.ObjectID, content string) (model.Tweet, error) {
	return s.put(model.Tweet{Owner: owner, Content: content, CreatedAt: time.Now()}), nil
}

func (s *fakeTweetStore) FindByID(_ context.Context, id bson.ObjectID) (model.Tweet, error) {
	tw, ok := s.tweets[id]
	if !ok {
		return model.Tweet{}, repository.ErrNotFound
	}
	return tw, nil
}

func (s *fakeTweetStore) UpdateContent(_ context.Context, id bson.ObjectID, content string) (model.Tweet, error) {
	tw, ok := s.tweets[id]
	if !ok {
		return model.Tweet{}, repository.ErrNotFound
	}
	tw.Content = content
	s.tweets[id] = tw
	return tw, nil
}

func (s *fakeTweetStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.log.add("tweets.Delete")
	if _, ok := s.tweets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.tweets, id)
	return nil
}

func (s *fakeTweetStore) ByUser(_ context.Context, _, _ bson.ObjectID) ([]model.TweetView, error) {
	return []model.TweetView{}, nil
}

type fakePlaylistStore struct {
	playlists map[bson.ObjectID]model.Playlist
}

func newFakePlaylistStore() *fakePlaylistStore {
	return &fakePlaylistStore{playlists: map[bson.ObjectID]model.Playlist{}}
}

func (s *fakePlaylistStore) put(p model.Playlist) model.Playlist {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	s.playlists[p.ID] = p
	return p
}

func (s *fakePlaylistStore) Create(_ context.Context, owner bson.ObjectID, name, description string) (model.Playlist, error) {
	return s.put(model.Playlist{Owner: owner, Name: name, Description: description, Videos: []bson.ObjectID{}}), nil
}

func (s *fakePlaylistStore) FindByID(_ context.Context, id bson.ObjectID) (model.Playlist, error) {
	p, ok := s.playlists[id]
	if !ok {
		return model.Playlist{}, repository.ErrNotFound
	}
	return p, nil
}

func (s *fakePlaylistStore) Update(_ context.Context, id bson.ObjectID, name, description string) (model.Playlist, error) {
	p, ok := s.playlists[id]
	if !ok {
		return model.Playlist{}, repository.ErrNotFound
	}
	if name != "" {
		p.Name = name
	}
	if description != "" {
		p.Description = description
	}
	s.playlists[id] = p
	return p, nil
}

func (s *fakePlaylistStore) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := s.playlists[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.playlists, id)
	return nil
}

func (s *fakePlaylistStore) AddVideo(_ context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error) {
	p, ok := s.playlists[playlistID]
	if !ok {
		return model.Playlist{}, repository.ErrNotFound
	}
	for _, id := range p.Videos {
		if id == videoID {
			return p, nil
		}
	}
	p.Videos = append(p.Videos, videoID)
	s.playlists[playlistID] = p
	return p, nil
}

func (s *fakePlaylistStore) RemoveVideo(_ context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error) {
	p, ok := s.playlists[playlistID]
	if !ok {
		return model.Playlist{}, repository.ErrNotFound
	}
	kept := p.Videos[:0]
	for _, id := range p.Videos {
		if id != videoID {
			kept = append(kept, id)
		}
	}
	p.Videos = kept
	s.playlists[playlistID] = p
	return p, nil
}

func (s *fakePlaylistStore) ByUser(_ context.Context, _ bson.ObjectID) ([]model.PlaylistSummary, error) {
	return []model.PlaylistSummary{}, nil
}

func (s *fakePlaylistStore) DetailByID(_ context.Context, id bson.ObjectID) (model.PlaylistDetail, error) {
	p, ok := s.playlists[id]
	if !ok {
		return model.PlaylistDetail{}, repository.ErrNotFound
	}
	return model.PlaylistDetail{ID: p.ID, Name: p.Name, Description: p.Description, VideoCount: int64(len(p.Videos))}, nil
}

type subKey struct {
	channel    bson.ObjectID
	subscriber bson.ObjectID
}

type fakeSubscriptionStore struct {
	subs map[subKey]bool
}

func newFakeSubscriptionStore() *fakeSubscriptionStore {
	return &fakeSubscriptionStore{subs: map[subKey]bool{}}
}

func (s *fakeSubscriptionStore) Remove(_ context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	k := subKey{channel, subscriber}
	if s.subs[k] {
		delete(s.subs, k)
		return true, nil
	}
	return false, nil
}

func (s *fakeSubscriptionStore) Add(_ context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	k := subKey{channel, subscriber}
	dup := s.subs[k]
	s.subs[k] = true
	return dup, nil
}

func (s *fakeSubscriptionStore) CountForChannel(_ context.Context, channel bson.ObjectID) (int64, error) {
	var n int64
	for k := range s.subs {
		if k.channel == channel {
			n++
		}
	}
	return n, nil
}

func (s *fakeSubscriptionStore) SubscribersOf(_ context.Context, _ bson.ObjectID) ([]model.OwnerProfile, error) {
	return []model.OwnerProfile{}, nil
}

func (s *fakeSubscriptionStore) ChannelsOf(_ context.Context, _ bson.ObjectID) ([]model.OwnerProfile, error) {
	return []model.OwnerProfile{}, nil
}

type fakeUserStore struct {
	users   map[bson.ObjectID]model.User
	watches []bson.ObjectID
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[bson.ObjectID]model.User{}}
}

func (s *fakeUserStore) put(u model.User) model.User {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	s.users[u.ID] = u
	return u
}

func (s *fakeUserStore) Create(_ context.Context, u model.User) (model.User, error) {
	for _, existing := range s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return model.User{}, repository.ErrConflict
		}
	}
	u.CreatedAt = time.Now()
	return s.put(u), nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id bson.ObjectID) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) FindByUsernameOrEmail(_ context.Context, username, email string) (model.User, error) {
	for _, u := range s.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *fakeUserStore) UpdateAccount(_ context.Context, id bson.ObjectID, fullName, email string) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	if fullName != "" {
		u.FullName = fullName
	}
	if email != "" {
		u.Email = email
	}
	s.users[id] = u
	return u, nil
}

func (s *fakeUserStore) SetAvatar(_ context.Context, id bson.ObjectID, asset model.MediaAsset) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	u.Avatar = asset
	s.users[id] = u
	return u, nil
}

func (s *fakeUserStore) SetCoverImage(_ context.Context, id bson.ObjectID, asset model.MediaAsset) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	u.CoverImage = asset
	s.users[id] = u
	return u, nil
}

func (s *fakeUserStore) SetPassword(_ context.Context, id bson.ObjectID, hash string) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hash
	s.users[id] = u
	return nil
}

func (s *fakeUserStore) SetRefreshToken(_ context.Context, id bson.ObjectID, tokenStr string) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.RefreshToken = tokenStr
	s.users[id] = u
	return nil
}

func (s *fakeUserStore) RecordWatch(_ context.Context, _, videoID bson.ObjectID) error {
	s.watches = append(s.watches, videoID)
	return nil
}

func (s *fakeUserStore) ChannelProfile(_ context.Context, username string, _ bson.ObjectID) (model.ChannelProfile, error) {
	for _, u := range s.users {
		if u.Username == username {
			return model.ChannelProfile{ID: u.ID, Username: u.Username, FullName: u.FullName}, nil
		}
	}
	return model.ChannelProfile{}, repository.ErrNotFound
}

func (s *fakeUserStore) WatchHistory(_ context.Context, _ model.User) ([]model.VideoFeedItem, error) {
	return []model.VideoFeedItem{}, nil
}

type fakeDashboardStore struct {
	stats  model.ChannelStats
	videos []model.ChannelVideoItem
}

func (s *fakeDashboardStore) Stats(_ context.Context, _ bson.ObjectID) (model.ChannelStats, error) {
	return s.stats, nil
}

func (s *fakeDashboardStore) ChannelVideos(_ context.Context, _ bson.ObjectID) ([]model.ChannelVideoItem, error) {
	if s.videos == nil {
		return []model.ChannelVideoItem{}, nil
	}
	return s.videos, nil
}
