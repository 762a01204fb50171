package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/authctx"
	"github.com/vidtube/backend/internal/token"
	"github.com/vidtube/backend/model"
)

// UserResolver turns a verified token subject into a live user.
type UserResolver interface {
	FindByID(ctx context.Context, id bson.ObjectID) (model.User, error)
}

func accessToken(c *fiber.Ctx) string {
	if tokenStr := c.Cookies("accessToken"); tokenStr != "" {
		return tokenStr
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

func resolveUser(c *fiber.Ctx, tm *token.Manager, users UserResolver, tokenStr string) (model.User, error) {
	uidHex, err := tm.VerifyAccess(tokenStr)
	if err != nil {
		return model.User{}, err
	}
	uid, err := bson.ObjectIDFromHex(uidHex)
	if err != nil {
		return model.User{}, err
	}
	return users.FindByID(c.Context(), uid)
}

// RequireAuth is the authentication gate. It reads the access token from the
// accessToken cookie or the Authorization header, verifies it, resolves the
// subject to a user and attaches the identity before any handler below runs.
// Any failure is a 401 with no identity attached.
func RequireAuth(tm *token.Manager, users UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := accessToken(c)
		if tokenStr == "" {
			return dto.Unauthorized("unauthorized request")
		}

		user, err := resolveUser(c, tm, users, tokenStr)
		if err != nil {
			return dto.Unauthorized("invalid access token")
		}

		authctx.SetUser(c, user)
		return c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid access token is
// present and lets the request through anonymously otherwise. Public reads use
// it so viewer-relative fields like is_liked and is_subscribed resolve.
func OptionalAuth(tm *token.Manager, users UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenStr := accessToken(c); tokenStr != "" {
			if user, err := resolveUser(c, tm, users, tokenStr); err == nil {
				authctx.SetUser(c, user)
			}
		}
		return c.Next()
	}
}
