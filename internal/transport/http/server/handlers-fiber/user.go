package handlers_fiber

import (
	"net/http"

	"taskboard/internal/api"
	"taskboard/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostSignup registers a user.
func (h *Handler) PostSignup(c *fiber.Ctx) error {
	var body api.SignupRequest
	if err := decodeBody(c, &body); err != nil {
		return err
	}

	if err := h.uc.CreateUser(c.UserContext(), mapper.FromSignupRequest(body)); err != nil {
		h.log.Infow("signup rejected", "username", body.Username, "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusAccepted).JSON(api.SignupResponse{
		OK:   true,
		User: api.User{Username: body.Username},
	})
}

// PostLogin exchanges credentials for a bearer token.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := decodeBody(c, &body); err != nil {
		return err
	}

	user, err := h.uc.FindByUsernameAndPassword(c.UserContext(), mapper.FromLoginRequest(body))
	if err != nil {
		return writeError(c, err)
	}
	if user == nil {
		return c.Status(http.StatusBadRequest).JSON(api.MessageResponse{Message: "not found"})
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		h.log.Errorw("failed to issue token", "error", err, "username", user.Username)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.TokenResponse{Token: token})
}
