package handlers

import (
	"StyleMate-Server/domain"
	"StyleMate-Server/internal/api/presenters"
	"StyleMate-Server/pkg/catalog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		IngestProducts(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) IngestProducts(c *fiber.Ctx) error {
	req := new(domain.IngestProductsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngestProducts, err)
	}

	res, err := h.catalogService.IngestProducts(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngestProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessIngestProducts)
}

func (h *catalogHandler) GetProducts(c *fiber.Ctx) error {
	query := domain.CatalogQuery{
		Category: c.Query("category", ""),
		Brand:    c.Query("brand", ""),
	}
	if maxPrice, err := strconv.ParseFloat(c.Query("max_price", "0"), 64); err == nil {
		query.MaxPrice = maxPrice
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	products, count, err := h.catalogService.GetProducts(c.Context(), query, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCatalog, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"products": products,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}
