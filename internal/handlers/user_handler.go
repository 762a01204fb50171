package handlers

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/authctx"
	"github.com/vidtube/backend/internal/repository"
	"github.com/vidtube/backend/model"
)

type UserHandler struct {
	Users  UserStore
	Media  MediaStore
	Tokens TokenManager
	Log    zerolog.Logger
}

func (h *UserHandler) setAuthCookies(c *fiber.Ctx, tokens dto.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    tokens.AccessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    tokens.RefreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *UserHandler) clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "accessToken", Value: "", Expires: expired, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refreshToken", Value: "", Expires: expired, HTTPOnly: true})
}

func (h *UserHandler) issueTokens(c *fiber.Ctx, user model.User) (dto.TokenPair, error) {
	access, err := h.Tokens.IssueAccess(user)
	if err != nil {
		return dto.TokenPair{}, dto.Internal("could not issue tokens")
	}
	refresh, err := h.Tokens.IssueRefresh(user)
	if err != nil {
		return dto.TokenPair{}, dto.Internal("could not issue tokens")
	}
	if err := h.Users.SetRefreshToken(c.Context(), user.ID, refresh); err != nil {
		return dto.TokenPair{}, dto.Internal("could not persist session")
	}
	return dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Register handles POST /users/register: multipart form with the account
// fields plus a required avatar file and optional cover image. Media is
// uploaded before the document is created so the stored URLs are always
// durable.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	fullName := strings.TrimSpace(c.FormValue("fullName"))
	email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
	username := strings.TrimSpace(strings.ToLower(c.FormValue("username")))
	password := c.FormValue("password")

	if fullName == "" || email == "" || username == "" || password == "" {
		return dto.BadRequest("fullName, email, username and password are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return dto.BadRequest("invalid email address")
	}

	if _, err := h.Users.FindByUsernameOrEmail(c.Context(), username, email); err == nil {
		return dto.NewApiError(fiber.StatusConflict, "user with this username or email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return dto.Internal(err.Error())
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		return dto.BadRequest("avatar file is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dto.Internal("could not hash password")
	}

	avatar, err := uploadFormFile(c.Context(), h.Media, "avatars", avatarFile)
	if err != nil {
		return err
	}

	var cover model.MediaAsset
	if coverFile, ferr := c.FormFile("coverImage"); ferr == nil {
		if cover, err = uploadFormFile(c.Context(), h.Media, "covers", coverFile); err != nil {
			return err
		}
	}

	user, err := h.Users.Create(c.Context(), model.User{
		Username:   username,
		Email:      email,
		FullName:   fullName,
		Avatar:     avatar,
		CoverImage: cover,
		Password:   string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return dto.NewApiError(fiber.StatusConflict, "user with this username or email already exists")
		}
		return dto.Internal(err.Error())
	}

	return dto.Created(c, user, "user registered successfully")
}

// Login handles POST /users/login with username or email plus password.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest("invalid request body")
	}
	req.Username = strings.TrimSpace(strings.ToLower(req.Username))
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if (req.Username == "" && req.Email == "") || req.Password == "" {
		return dto.BadRequest("username or email, and password are required")
	}

	user, err := h.Users.FindByUsernameOrEmail(c.Context(), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.Unauthorized("invalid credentials")
		}
		return dto.Internal(err.Error())
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return dto.Unauthorized("invalid credentials")
	}

	tokens, err := h.issueTokens(c, user)
	if err != nil {
		return err
	}
	h.setAuthCookies(c, tokens)
	return dto.OK(c, dto.AuthPayload{User: user, Tokens: tokens}, "user logged in successfully")
}

// Logout clears the stored refresh credential and expires the cookies.
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)
	if err := h.Users.SetRefreshToken(c.Context(), user.ID, ""); err != nil {
		return dto.Internal(err.Error())
	}
	h.clearAuthCookies(c)
	return dto.OK(c, nil, "user logged out successfully")
}

// RefreshToken rotates the token pair. The incoming refresh token must both
// verify and match the one stored for the user, so a stolen token dies the
// moment the owner refreshes.
func (h *UserHandler) RefreshToken(c *fiber.Ctx) error {
	incoming := c.Cookies("refreshToken")
	if incoming == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.BodyParser(&body); err == nil {
			incoming = body.RefreshToken
		}
	}
	if incoming == "" {
		return dto.Unauthorized("refresh token is required")
	}

	uidHex, err := h.Tokens.VerifyRefresh(incoming)
	if err != nil {
		return dto.Unauthorized("invalid refresh token")
	}
	uid, err := bson.ObjectIDFromHex(uidHex)
	if err != nil {
		return dto.Unauthorized("invalid refresh token")
	}

	user, err := h.Users.FindByID(c.Context(), uid)
	if err != nil {
		return dto.Unauthorized("invalid refresh token")
	}
	if user.RefreshToken == "" || user.RefreshToken != incoming {
		return dto.Unauthorized("refresh token is expired or already used")
	}

	tokens, err := h.issueTokens(c, user)
	if err != nil {
		return err
	}
	h.setAuthCookies(c, tokens)
	return dto.OK(c, tokens, "access token refreshed")
}

// ChangePassword handles POST /users/change-password.
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest("invalid request body")
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return dto.BadRequest("oldPassword and newPassword are required")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
		return dto.BadRequest("old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return dto.Internal("could not hash password")
	}
	if err := h.Users.SetPassword(c.Context(), user.ID, string(hash)); err != nil {
		return dto.Internal(err.Error())
	}
	return dto.OK(c, nil, "password changed successfully")
}

// CurrentUser returns the authenticated user.
func (h *UserHandler) CurrentUser(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)
	return dto.OK(c, user, "current user fetched successfully")
}

// UpdateAccount updates fullName and/or email.
func (h *UserHandler) UpdateAccount(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest("invalid request body")
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.FullName == "" && req.Email == "" {
		return dto.BadRequest("at least one of fullName or email is required")
	}
	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return dto.BadRequest("invalid email address")
		}
	}

	updated, err := h.Users.UpdateAccount(c.Context(), user.ID, req.FullName, req.Email)
	if err != nil {
		return notFoundOr(err, "user not found")
	}
	return dto.OK(c, updated, "account details updated successfully")
}

// UpdateAvatar replaces the avatar. The new asset is uploaded first and the
// old one removed only after the document update succeeds.
func (h *UserHandler) UpdateAvatar(c *fiber.Ctx) error {
	return h.updateMedia(c, "avatar", "avatars", h.Users.SetAvatar, func(u model.User) model.MediaAsset { return u.Avatar })
}

// UpdateCoverImage replaces the cover image, same discipline as the avatar.
func (h *UserHandler) UpdateCoverImage(c *fiber.Ctx) error {
	return h.updateMedia(c, "coverImage", "covers", h.Users.SetCoverImage, func(u model.User) model.MediaAsset { return u.CoverImage })
}

func (h *UserHandler) updateMedia(
	c *fiber.Ctx,
	field, folder string,
	set func(ctx context.Context, id bson.ObjectID, asset model.MediaAsset) (model.User, error),
	old func(model.User) model.MediaAsset,
) error {
	user, _ := authctx.UserFrom(c)

	fh, err := c.FormFile(field)
	if err != nil {
		return dto.BadRequest(field + " file is required")
	}
	asset, err := uploadFormFile(c.Context(), h.Media, folder, fh)
	if err != nil {
		return err
	}

	updated, err := set(c.Context(), user.ID, asset)
	if err != nil {
		return notFoundOr(err, "user not found")
	}

	if prev := old(user); prev.Key != "" {
		if derr := h.Media.Delete(c.Context(), prev); derr != nil {
			h.Log.Warn().Err(derr).Str("key", prev.Key).Msg("failed to delete replaced media asset")
		}
	}
	return dto.OK(c, updated, field+" updated successfully")
}

// ChannelProfile handles GET /users/c/:username.
func (h *UserHandler) ChannelProfile(c *fiber.Ctx) error {
	username := strings.TrimSpace(strings.ToLower(c.Params("username")))
	if username == "" {
		return dto.BadRequest("username is required")
	}
	viewer, _ := authctx.UserIDFrom(c)

	profile, err := h.Users.ChannelProfile(c.Context(), username, viewer)
	if err != nil {
		return notFoundOr(err, "channel does not exist")
	}
	return dto.OK(c, profile, "channel profile fetched successfully")
}

// WatchHistory handles GET /users/history.
func (h *UserHandler) WatchHistory(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	items, err := h.Users.WatchHistory(c.Context(), user)
	if err != nil {
		return dto.Internal(err.Error())
	}
	return dto.OK(c, items, "watch history fetched successfully")
}
