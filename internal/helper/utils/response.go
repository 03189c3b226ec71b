package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/interview-express/experience_service/internal/common"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

// create a generic response function for success
func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

// ResponseFromError maps service sentinel errors to HTTP statuses.
func ResponseFromError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrInvalidCredential):
		return ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrNotFound):
		return ResponseError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		return ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	default:
		return ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
}
