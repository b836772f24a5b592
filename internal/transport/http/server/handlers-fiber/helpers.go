package handlers_fiber

import (
	"errors"
	"net/http"

	"taskboard/internal/api"
	"taskboard/internal/entities"
	"taskboard/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrUsernameTaken):
		status = http.StatusConflict
		msg = "username already taken"
	case errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		msg = "user not found"
	case errors.Is(err, entities.ErrUnauthorized):
		return c.Status(http.StatusForbidden).JSON(api.MessageResponse{Message: "forbidden"})
	}

	return c.Status(status).JSON(api.ErrorResponse{Error: msg})
}

// ErrorHandler renders errors that escape handlers, including recovered panics.
func ErrorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(api.ErrorResponse{Error: fe.Message})
		}
		log.Errorw("unhandled error", "error", err, "path", c.Path())
		return c.Status(http.StatusInternalServerError).JSON(api.ErrorResponse{Error: "internal error"})
	}
}

// decodeBody returns a 400 *fiber.Error for a malformed or invalid body; callers
// must return it so the ErrorHandler renders it and the handler stops.
func decodeBody(c *fiber.Ctx, dst any) error {
	if err := api.Decode(c.Body(), dst); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// actingUser returns the id stored by the auth gate; routes without it are misconfigured.
func actingUser(c *fiber.Ctx) (string, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return "", entities.ErrUnauthorized
	}
	return id, nil
}
