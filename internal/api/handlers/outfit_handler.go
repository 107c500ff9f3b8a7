package handlers

import (
	"StyleMate-Server/domain"
	"StyleMate-Server/internal/api/presenters"
	"StyleMate-Server/pkg/outfit"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OutfitHandler interface {
		RecommendOutfits(c *fiber.Ctx) error
		RecordSwipe(c *fiber.Ctx) error
		GetSwipeHistory(c *fiber.Ctx) error
		GetStyleProfile(c *fiber.Ctx) error
	}

	outfitHandler struct {
		outfitService outfit.OutfitService
		validator     *validator.Validate
	}
)

func NewOutfitHandler(outfitService outfit.OutfitService, validator *validator.Validate) OutfitHandler {
	return &outfitHandler{
		outfitService: outfitService,
		validator:     validator,
	}
}

func (h *outfitHandler) RecommendOutfits(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecommendOutfitsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOutfits, err)
	}

	res, err := h.outfitService.RecommendOutfits(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOutfits, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOutfits)
}

func (h *outfitHandler) RecordSwipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SwipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordSwipe, err)
	}

	if err := h.outfitService.RecordSwipe(c.Context(), userID, *req); err != nil {
		if errors.Is(err, domain.ErrInvalidSwipe) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedRecordSwipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordSwipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessRecordSwipe)
}

func (h *outfitHandler) GetSwipeHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	res, err := h.outfitService.GetSwipeHistory(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSwipeHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"events": res.Events,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       res.Total,
			"total_pages": (res.Total + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetSwipeHistory)
}

func (h *outfitHandler) GetStyleProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	profile, err := h.outfitService.GetStyleProfile(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStyleProfile, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessGetStyleProfile)
}
