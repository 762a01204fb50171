package dto

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ApiResponse is the envelope every successful endpoint returns.
type ApiResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func NewApiResponse(statusCode int, data any, message string) ApiResponse {
	return ApiResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

// OK writes a 200 envelope.
func OK(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusOK).JSON(NewApiResponse(fiber.StatusOK, data, message))
}

// Created writes a 201 envelope.
func Created(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(NewApiResponse(fiber.StatusCreated, data, message))
}

// ApiError is the one error type handlers return. The app-level error
// handler renders it as the error envelope, so no handler builds an ad-hoc
// error shape.
type ApiError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errs       []string `json:"errors"`
}

func (e *ApiError) Error() string { return e.Message }

func NewApiError(statusCode int, message string, errs ...string) *ApiError {
	if errs == nil {
		errs = []string{}
	}
	return &ApiError{StatusCode: statusCode, Message: message, Errs: errs}
}

func BadRequest(message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *ApiError {
	return NewApiError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *ApiError {
	return NewApiError(fiber.StatusForbidden, message)
}

func NotFound(message string) *ApiError {
	return NewApiError(fiber.StatusNotFound, message)
}

func Internal(message string, errs ...string) *ApiError {
	return NewApiError(fiber.StatusInternalServerError, message, errs...)
}

// ErrorHandler renders every error as the error envelope. It is installed as
// the fiber app's ErrorHandler: handlers return *ApiError, anything else
// (routing errors, panics surfaced by recover) becomes a generic error of the
// matching status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *ApiError
	if !errors.As(err, &apiErr) {
		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}
		apiErr = NewApiError(code, err.Error())
	}
	return c.Status(apiErr.StatusCode).JSON(apiErr)
}
