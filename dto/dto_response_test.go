package dto

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestNewApiResponseSuccessFlag(t *testing.T) {
	if !NewApiResponse(200, nil, "ok").Success {
		t.Error("expected success for 200")
	}
	if !NewApiResponse(201, nil, "created").Success {
		t.Error("expected success for 201")
	}
	if NewApiResponse(404, nil, "missing").Success {
		t.Error("expected failure for 404")
	}
}

func TestApiResponseEnvelopeShape(t *testing.T) {
	raw, err := json.Marshal(NewApiResponse(200, map[string]string{"k": "v"}, "fetched"))
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"statusCode", "data", "message", "success"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("envelope missing %q", key)
		}
	}
}

func TestApiErrorImplementsError(t *testing.T) {
	var err error = NewApiError(fiber.StatusNotFound, "video not found")
	if err.Error() != "video not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestApiErrorErrorsNeverNull(t *testing.T) {
	raw, err := json.Marshal(BadRequest("bad input"))
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		StatusCode int      `json:"statusCode"`
		Success    bool     `json:"success"`
		Errors     []string `json:"errors"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.StatusCode != 400 {
		t.Errorf("statusCode = %d, want 400", decoded.StatusCode)
	}
	if decoded.Success {
		t.Error("error envelope must have success=false")
	}
	if decoded.Errors == nil {
		t.Error("errors must serialize as [], not null")
	}
}
