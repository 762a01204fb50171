package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/authctx"
)

type SubscriptionHandler struct {
	Subscriptions SubscriptionStore
	Users         UserStore
}

// Toggle handles POST /subscriptions/c/:channelId. Subscribing to yourself is
// rejected; a duplicate-key race on insert converges on "subscribed".
func (h *SubscriptionHandler) Toggle(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	channelID, err := paramID(c, "channelId")
	if err != nil {
		return err
	}
	if channelID == user.ID {
		return dto.BadRequest("you cannot subscribe to your own channel")
	}
	if _, err := h.Users.FindByID(c.Context(), channelID); err != nil {
		return notFoundOr(err, "channel not found")
	}

	removed, err := h.Subscriptions.Remove(c.Context(), channelID, user.ID)
	if err != nil {
		return dto.Internal(err.Error())
	}
	subscribed := false
	if !removed {
		if _, err := h.Subscriptions.Add(c.Context(), channelID, user.ID); err != nil {
			return dto.Internal(err.Error())
		}
		subscribed = true
	}

	total, err := h.Subscriptions.CountForChannel(c.Context(), channelID)
	if err != nil {
		return dto.Internal(err.Error())
	}

	message := "unsubscribed successfully"
	if subscribed {
		message = "subscribed successfully"
	}
	return dto.OK(c, dto.ToggleSubscriptionResponse{IsSubscribed: subscribed, TotalSubscribers: total}, message)
}

// Subscribers handles GET /subscriptions/c/:channelId.
func (h *SubscriptionHandler) Subscribers(c *fiber.Ctx) error {
	channelID, err := paramID(c, "channelId")
	if err != nil {
		return err
	}

	profiles, err := h.Subscriptions.SubscribersOf(c.Context(), channelID)
	if err != nil {
		return dto.Internal(err.Error())
	}

	message := "subscribers fetched successfully"
	if len(profiles) == 0 {
		message = "no subscribers found"
	}
	return dto.OK(c, profiles, message)
}

// SubscribedChannels handles GET /subscriptions/u/:subscriberId.
func (h *SubscriptionHandler) SubscribedChannels(c *fiber.Ctx) error {
	subscriberID, err := paramID(c, "subscriberId")
	if err != nil {
		return err
	}

	profiles, err := h.Subscriptions.ChannelsOf(c.Context(), subscriberID)
	if err != nil {
		return dto.Internal(err.Error())
	}

	message := "subscribed channels fetched successfully"
	if len(profiles) == 0 {
		message = "no subscribed channels found"
	}
	return dto.OK(c, profiles, message)
}
