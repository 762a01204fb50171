package token

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/model"
)

func testUser() model.User {
	return model.User{
		ID:       bson.NewObjectID(),
		Username: "channelone",
		Email:    "one@example.com",
	}
}

func TestAccessTokenRoundtrip(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	user := testUser()

	signed, err := m.IssueAccess(user)
	if err != nil {
		t.Fatal(err)
	}

	subject, err := m.VerifyAccess(signed)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if subject != user.ID.Hex() {
		t.Errorf("subject = %q, want %q", subject, user.ID.Hex())
	}
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	user := testUser()

	signed, err := m.IssueRefresh(user)
	if err != nil {
		t.Fatal(err)
	}

	subject, err := m.VerifyRefresh(signed)
	if err != nil {
		t.Fatalf("VerifyRefresh: %v", err)
	}
	if subject != user.ID.Hex() {
		t.Errorf("subject = %q, want %q", subject, user.ID.Hex())
	}
}

func TestAccessAndRefreshSecretsAreSeparate(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	user := testUser()

	access, _ := m.IssueAccess(user)
	refresh, _ := m.IssueRefresh(user)

	if _, err := m.VerifyRefresh(access); err == nil {
		t.Error("access token must not verify as a refresh token")
	}
	if _, err := m.VerifyAccess(refresh); err == nil {
		t.Error("refresh token must not verify as an access token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	issued := time.Now()
	m.WithNowFunc(func() time.Time { return issued })
	signed, err := m.IssueAccess(testUser())
	if err != nil {
		t.Fatal(err)
	}

	m.WithNowFunc(func() time.Time { return issued.Add(2 * time.Hour) })
	if _, err := m.VerifyAccess(signed); err == nil {
		t.Error("expired token must be rejected")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewManager("real-secret", "refresh-secret", time.Hour, 24*time.Hour)
	verifier := NewManager("other-secret", "refresh-secret", time.Hour, 24*time.Hour)

	signed, err := issuer.IssueAccess(testUser())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.VerifyAccess(signed); err == nil {
		t.Error("token signed with a different secret must be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	for _, tokenStr := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := m.VerifyAccess(tokenStr); err == nil {
			t.Errorf("VerifyAccess(%q) must fail", tokenStr)
		}
	}
}
