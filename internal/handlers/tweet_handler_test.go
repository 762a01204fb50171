package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/model"
)

func tweetFixture() (*TweetHandler, *fakeTweetStore, *fakeLikeStore) {
	log := &callLog{}
	tweets := newFakeTweetStore(log)
	likes := newFakeLikeStore(log)
	return &TweetHandler{Tweets: tweets, Likes: likes}, tweets, likes
}

func TestTweetCreate(t *testing.T) {
	h, _, _ := tweetFixture()
	user := model.User{ID: bson.NewObjectID(), Username: "poster"}

	app := testApp(user, fiber.MethodPost, "/tweets", h.Create)
	req := httptest.NewRequest("POST", "/tweets", strings.NewReader(`{"content":"first!"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var created model.Tweet
	decodeEnvelope(t, resp, &created)
	if created.Content != "first!" || created.Owner != user.ID {
		t.Errorf("created = %+v", created)
	}
}

func TestTweetCreateBlank(t *testing.T) {
	h, _, _ := tweetFixture()
	user := model.User{ID: bson.NewObjectID()}

	app := testApp(user, fiber.MethodPost, "/tweets", h.Create)
	req := httptest.NewRequest("POST", "/tweets", strings.NewReader(`{"content":""}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestTweetUpdateRequiresOwnership(t *testing.T) {
	h, tweets, _ := tweetFixture()
	tweet, _ := tweets.Create(t.Context(), bson.NewObjectID(), "mine")
	stranger := model.User{ID: bson.NewObjectID(), Username: "stranger"}

	app := testApp(stranger, fiber.MethodPatch, "/tweets/:tweetId", h.Update)
	req := httptest.NewRequest("PATCH", "/tweets/"+tweet.ID.Hex(), strings.NewReader(`{"content":"hijacked"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestTweetDeleteCleansUpLikes(t *testing.T) {
	h, tweets, likes := tweetFixture()
	owner := model.User{ID: bson.NewObjectID(), Username: "owner"}
	tweet, _ := tweets.Create(t.Context(), owner.ID, "bye")
	likes.Add(t.Context(), model.TargetTweet, tweet.ID, bson.NewObjectID())

	app := testApp(owner, fiber.MethodDelete, "/tweets/:tweetId", h.Delete)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/tweets/"+tweet.ID.Hex(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	n, _ := likes.Count(t.Context(), model.TargetTweet, tweet.ID)
	if n != 0 {
		t.Errorf("likes remaining = %d, want 0", n)
	}
}

func TestTweetDeleteRemovesLikesBeforeDocument(t *testing.T) {
	h, tweets, likes := tweetFixture()
	owner := model.User{ID: bson.NewObjectID(), Username: "owner"}
	tweet, _ := tweets.Create(t.Context(), owner.ID, "bye")
	likes.Add(t.Context(), model.TargetTweet, tweet.ID, bson.NewObjectID())

	app := testApp(owner, fiber.MethodDelete, "/tweets/:tweetId", h.Delete)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/tweets/"+tweet.ID.Hex(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	// Same order as the video cascade: dependents before the document.
	want := []string{"likes.DeleteByTargets:tweet", "tweets.Delete"}
	if len(tweets.log.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", tweets.log.calls, want)
	}
	for i, name := range want {
		if tweets.log.calls[i] != name {
			t.Fatalf("call %d = %q, want %q (full order %v)", i, tweets.log.calls[i], name, tweets.log.calls)
		}
	}
}

func TestTweetsByUserMalformedID(t *testing.T) {
	h, _, _ := tweetFixture()

	app := testApp(model.User{}, fiber.MethodGet, "/tweets/user/:userId", h.ByUser)
	resp, err := app.Test(httptest.NewRequest("GET", "/tweets/user/xyz", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
