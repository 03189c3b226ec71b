package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/interview-express/experience_service/internal/dto"
	"github.com/interview-express/experience_service/internal/helper/utils"
	"github.com/interview-express/experience_service/internal/services"
)

type AuthHandler struct {
	users        services.UserService
	verification services.VerificationService
	devMode      bool
}

func NewAuthHandler(users services.UserService, verification services.VerificationService, devMode bool) *AuthHandler {
	return &AuthHandler{
		users:        users,
		verification: verification,
		devMode:      devMode,
	}
}

func (h *AuthHandler) SetupRoutes(api fiber.Router) {
	auth := api.Group("/auth")

	auth.Post("/send-code", h.SendCode)
	auth.Post("/login", h.Login)
	auth.Post("/direct-login", h.DirectLogin)

	if h.devMode {
		auth.Get("/test-code/:phone", h.TestCode)
	}
}

func (h *AuthHandler) SendCode(ctx *fiber.Ctx) error {
	var requestBody dto.SendCodeRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "phone is required")
	}

	if err := h.verification.SendCode(ctx.Context(), requestBody.Phone); err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, "SMS code sent successfully")
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "phone is required")
	}

	token, err := h.users.Login(ctx.Context(), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(token)
}

func (h *AuthHandler) DirectLogin(ctx *fiber.Ctx) error {
	var requestBody dto.DirectLoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "phone is required")
	}

	token, err := h.users.DirectLogin(ctx.Context(), requestBody.Phone)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(token)
}

// TestCode is registered in non-prod environments only.
func (h *AuthHandler) TestCode(ctx *fiber.Ctx) error {
	phone := ctx.Params("phone")

	code, err := h.verification.PeekCode(ctx.Context(), phone)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"phone": phone,
		"code":  code,
	})
}
