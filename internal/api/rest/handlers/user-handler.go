package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/interview-express/experience_service/internal/api/rest/middleware"
	"github.com/interview-express/experience_service/internal/dto"
	"github.com/interview-express/experience_service/internal/helper"
	"github.com/interview-express/experience_service/internal/helper/utils"
	"github.com/interview-express/experience_service/internal/services"
)

type UserHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewUserHandler(svc services.UserService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

func (h *UserHandler) SetupRoutes(api fiber.Router) {
	users := api.Group("/users", middleware.AuthMiddleware(h.auth))

	users.Get("/me", h.Me)
	users.Put("/me", h.UpdateMe)
}

func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	phone, err := h.auth.GetCurrentPhone(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	user, err := h.svc.GetProfileByPhone(phone)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) UpdateMe(ctx *fiber.Ctx) error {
	phone, err := h.auth.GetCurrentPhone(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var requestBody dto.UpdateUserProfile
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	user, err := h.svc.UpdateProfileByPhone(phone, requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.NewUserResponse(user))
}
