package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/interview-express/experience_service/internal/api/rest/middleware"
	"github.com/interview-express/experience_service/internal/dto"
	"github.com/interview-express/experience_service/internal/helper"
	"github.com/interview-express/experience_service/internal/helper/utils"
	"github.com/interview-express/experience_service/internal/services"
)

type ExperienceHandler struct {
	svc  services.ExperienceService
	auth helper.Auth
}

func NewExperienceHandler(svc services.ExperienceService, auth helper.Auth) *ExperienceHandler {
	return &ExperienceHandler{svc: svc, auth: auth}
}

func (h *ExperienceHandler) SetupRoutes(api fiber.Router) {
	exp := api.Group("/experiences")
	authRequired := middleware.AuthMiddleware(h.auth)

	// public reads; "/search" must register before "/:id"
	exp.Get("/", h.List)
	exp.Get("/search", h.Search)
	exp.Get("/:id", h.Get)

	// owner-gated mutations
	exp.Post("/", authRequired, h.Create)
	exp.Put("/:id", authRequired, h.Update)
	exp.Delete("/:id", authRequired, h.Delete)
}

func (h *ExperienceHandler) List(ctx *fiber.Ctx) error {
	query := dto.ExperienceQuery{
		Skip:     ctx.QueryInt("skip", 0),
		Limit:    ctx.QueryInt("limit", 10),
		Company:  ctx.Query("company"),
		Position: ctx.Query("position"),
		Tags:     splitTags(ctx.Query("tags")),
	}

	items, err := h.svc.List(query)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, items)
}

func (h *ExperienceHandler) Search(ctx *fiber.Ctx) error {
	items, err := h.svc.Search(
		ctx.Query("q"),
		ctx.QueryInt("skip", 0),
		ctx.QueryInt("limit", 10),
	)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, items)
}

func (h *ExperienceHandler) Get(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid experience id")
	}

	item, err := h.svc.Get(id)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, item)
}

func (h *ExperienceHandler) Create(ctx *fiber.Ctx) error {
	phone, err := h.auth.GetCurrentPhone(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var requestBody dto.ExperienceCreate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	item, err := h.svc.Create(requestBody, phone)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, item)
}

func (h *ExperienceHandler) Update(ctx *fiber.Ctx) error {
	phone, err := h.auth.GetCurrentPhone(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	id, err := parseID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid experience id")
	}

	var requestBody dto.ExperienceUpdate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	item, err := h.svc.Update(id, requestBody, phone)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, item)
}

func (h *ExperienceHandler) Delete(ctx *fiber.Ctx) error {
	phone, err := h.auth.GetCurrentPhone(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	id, err := parseID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid experience id")
	}

	if err := h.svc.Delete(id, phone); err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Experience deleted successfully")
}

func parseID(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
