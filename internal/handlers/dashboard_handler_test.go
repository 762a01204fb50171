package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/model"
)

func TestDashboardStats(t *testing.T) {
	h := &DashboardHandler{Dashboard: &fakeDashboardStore{
		stats: model.ChannelStats{TotalSubscribers: 12, TotalVideos: 3, TotalViews: 450, TotalLikes: 99},
	}}
	owner := model.User{ID: bson.NewObjectID(), Username: "owner"}

	app := testApp(owner, fiber.MethodGet, "/dashboard/stats", h.Stats)
	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/stats", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var stats model.ChannelStats
	decodeEnvelope(t, resp, &stats)
	if stats.TotalSubscribers != 12 || stats.TotalLikes != 99 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestDashboardVideosEmptyIsSuccess(t *testing.T) {
	h := &DashboardHandler{Dashboard: &fakeDashboardStore{}}
	owner := model.User{ID: bson.NewObjectID(), Username: "owner"}

	app := testApp(owner, fiber.MethodGet, "/dashboard/videos", h.Videos)
	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/videos", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	_, message := decodeEnvelope(t, resp, nil)
	if message != "no videos found" {
		t.Errorf("message = %q", message)
	}
}
