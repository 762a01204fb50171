package authctx

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vidtube/backend/model"
)

const (
	userKey   = "auth_user"
	userIDKey = "user_id"
)

// SetUser attaches the resolved identity to the request. Only the auth
// middleware calls this, and only after the token fully verified.
func SetUser(c *fiber.Ctx, user model.User) {
	c.Locals(userKey, user)
	c.Locals(userIDKey, user.ID.Hex())
}

// UserFrom returns the authenticated user, if any.
func UserFrom(c *fiber.Ctx) (model.User, bool) {
	if v := c.Locals(userKey); v != nil {
		if u, ok := v.(model.User); ok && !u.ID.IsZero() {
			return u, true
		}
	}
	return model.User{}, false
}

// UserIDFrom returns the authenticated user's id, if any.
func UserIDFrom(c *fiber.Ctx) (bson.ObjectID, bool) {
	u, ok := UserFrom(c)
	if !ok {
		return bson.NilObjectID, false
	}
	return u.ID, true
}

// CanMutate is the single ownership predicate applied before every mutating
// operation on owned resources.
func CanMutate(actor, resourceOwner bson.ObjectID) bool {
	return !actor.IsZero() && actor == resourceOwner
}
