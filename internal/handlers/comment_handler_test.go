package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/model"
)

func commentFixture() (*CommentHandler, *fakeCommentStore, *fakeVideoStore, *fakeLikeStore) {
	log := &callLog{}
	comments := newFakeCommentStore(log)
	videos := newFakeVideoStore(log)
	likes := newFakeLikeStore(log)
	return &CommentHandler{Comments: comments, Videos: videos, Likes: likes}, comments, videos, likes
}

func TestCommentCreate(t *testing.T) {
	h, _, videos, _ := commentFixture()
	user := model.User{ID: bson.NewObjectID(), Username: "commenter"}
	video := videos.put(model.Video{Owner: bson.NewObjectID(), Title: "clip", IsPublished: true})

	app := testApp(user, fiber.MethodPost, "/comments/:videoId", h.Create)
	req := httptest.NewRequest("POST", "/comments/"+video.ID.Hex(), strings.NewReader(`{"content":"great video"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var created model.Comment
	decodeEnvelope(t, resp, &created)
	if created.Content != "great video" {
		t.Errorf("content = %q", created.Content)
	}
	if created.Owner != user.ID {
		t.Error("comment owner must be the caller")
	}
}

func TestCommentCreateMissingVideo(t *testing.T) {
	h, _, _, _ := commentFixture()
	user := model.User{ID: bson.NewObjectID()}

	app := testApp(user, fiber.MethodPost, "/comments/:videoId", h.Create)
	req := httptest.NewRequest("POST", "/comments/"+bson.NewObjectID().Hex(), strings.NewReader(`{"content":"hello"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCommentCreateBlankContent(t *testing.T) {
	h, _, videos, _ := commentFixture()
	user := model.User{ID: bson.NewObjectID()}
	video := videos.put(model.Video{Owner: bson.NewObjectID(), IsPublished: true})

	app := testApp(user, fiber.MethodPost, "/comments/:videoId", h.Create)
	req := httptest.NewRequest("POST", "/comments/"+video.ID.Hex(), strings.NewReader(`{"content":"   "}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCommentUpdateRequiresOwnership(t *testing.T) {
	h, comments, _, _ := commentFixture()
	comment, _ := comments.Create(t.Context(), bson.NewObjectID(), bson.NewObjectID(), "original")
	stranger := model.User{ID: bson.NewObjectID(), Username: "stranger"}

	app := testApp(stranger, fiber.MethodPatch, "/comments/c/:commentId", h.Update)
	req := httptest.NewRequest("PATCH", "/comments/c/"+comment.ID.Hex(), strings.NewReader(`{"content":"hijacked"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
	if comments.comments[comment.ID].Content != "original" {
		t.Error("content must be untouched after a forbidden update")
	}
}

func TestCommentDeleteCleansUpLikes(t *testing.T) {
	h, comments, _, likes := commentFixture()
	owner := model.User{ID: bson.NewObjectID(), Username: "owner"}
	comment, _ := comments.Create(t.Context(), bson.NewObjectID(), owner.ID, "bye")
	likes.Add(t.Context(), model.TargetComment, comment.ID, bson.NewObjectID())

	app := testApp(owner, fiber.MethodDelete, "/comments/c/:commentId", h.Delete)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/comments/c/"+comment.ID.Hex(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if _, ok := comments.comments[comment.ID]; ok {
		t.Error("comment must be deleted")
	}
	n, _ := likes.Count(t.Context(), model.TargetComment, comment.ID)
	if n != 0 {
		t.Errorf("likes remaining = %d, want 0", n)
	}
}

func TestCommentDeleteRemovesLikesBeforeDocument(t *testing.T) {
	h, comments, _, likes := commentFixture()
	owner := model.User{ID: bson.NewObjectID(), Username: "owner"}
	comment, _ := comments.Create(t.Context(), bson.NewObjectID(), owner.ID, "bye")
	likes.Add(t.Context(), model.TargetComment, comment.ID, bson.NewObjectID())

	app := testApp(owner, fiber.MethodDelete, "/comments/c/:commentId", h.Delete)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/comments/c/"+comment.ID.Hex(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	// Same order as the video cascade: dependents before the document.
	want := []string{"likes.DeleteByTargets:comment", "comments.Delete"}
	if len(comments.log.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", comments.log.calls, want)
	}
	for i, name := range want {
		if comments.log.calls[i] != name {
			t.Fatalf("call %d = %q, want %q (full order %v)", i, comments.log.calls[i], name, comments.log.calls)
		}
	}
}

func TestCommentListEmptyIsSuccess(t *testing.T) {
	h, _, _, _ := commentFixture()

	app := testApp(model.User{}, fiber.MethodGet, "/comments/:videoId", h.List)
	resp, err := app.Test(httptest.NewRequest("GET", "/comments/"+bson.NewObjectID().Hex(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	_, message := decodeEnvelope(t, resp, nil)
	if message != "no comments found" {
		t.Errorf("message = %q", message)
	}
}
