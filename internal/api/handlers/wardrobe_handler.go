package handlers

import (
	"StyleMate-Server/domain"
	"StyleMate-Server/internal/api/presenters"
	"StyleMate-Server/pkg/wardrobe"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WardrobeHandler interface {
		AddItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		UploadItemImage(c *fiber.Ctx) error
	}

	wardrobeHandler struct {
		wardrobeService wardrobe.WardrobeService
		validator       *validator.Validate
	}
)

func NewWardrobeHandler(wardrobeService wardrobe.WardrobeService, validator *validator.Validate) WardrobeHandler {
	return &wardrobeHandler{
		wardrobeService: wardrobeService,
		validator:       validator,
	}
}

func (h *wardrobeHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddWardrobeItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWardrobeItem, err)
	}

	res, err := h.wardrobeService.AddItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWardrobeItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddWardrobeItem)
}

func (h *wardrobeHandler) GetItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	category := c.Query("category", "")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.wardrobeService.GetItems(c.Context(), userID, category, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWardrobeItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetWardrobeItems)
}

func (h *wardrobeHandler) UpdateItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateWardrobeItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateWardrobeItem, err)
	}

	res, err := h.wardrobeService.UpdateItem(c.Context(), itemID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateWardrobeItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateWardrobeItem)
}

func (h *wardrobeHandler) DeleteItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.wardrobeService.DeleteItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteWardrobeItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteWardrobeItem)
}

func (h *wardrobeHandler) UploadItemImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadItemImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadItemImage, err)
	}

	url, err := h.wardrobeService.UploadItemImage(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadItemImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": url}, fiber.StatusOK, domain.MessageSuccessUploadItemImage)
}
