package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vidtube/backend/dto"
)

// RequestLogger logs one line per request with a generated request id. The
// id is echoed back in X-Request-Id so client reports can be correlated.
func RequestLogger(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("X-Request-Id", requestID)

		start := time.Now()
		err := c.Next()

		// The app ErrorHandler runs after this middleware returns, so on the
		// error path the response status is not written yet; derive it from
		// the error instead.
		status := c.Response().StatusCode()
		if err != nil {
			var apiErr *dto.ApiError
			var fiberErr *fiber.Error
			switch {
			case errors.As(err, &apiErr):
				status = apiErr.StatusCode
			case errors.As(err, &fiberErr):
				status = fiberErr.Code
			default:
				status = fiber.StatusInternalServerError
			}
		}

		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		} else if status >= 400 {
			event = logger.Warn()
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")

		return err
	}
}
