package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCatalog     = "catalog products retrieved successfully"
	MessageSuccessIngestProducts = "catalog products ingested successfully"
	MessageFailedGetCatalog      = "failed to retrieve catalog products"
	MessageFailedIngestProducts  = "failed to ingest catalog products"

	ErrEmptyIngestBatch = errors.New("ingest batch contains no products")
)

type (
	Retailer struct {
		ID   string `json:"id" validate:"required"`
		Name string `json:"name" validate:"required"`
	}

	// ScrapedProduct mirrors what the retailer scraper posts. Category may be
	// empty; the service derives it from keywords in the product name.
	ScrapedProduct struct {
		Name       string   `json:"name" validate:"required"`
		Brand      string   `json:"brand" validate:"required"`
		Price      float64  `json:"price" validate:"required,gte=0"`
		ImageURL   string   `json:"image_url" validate:"required,url"`
		ProductURL string   `json:"product_url" validate:"required,url"`
		Category   string   `json:"category" validate:"omitempty,oneof=top bottom outerwear shoes accessory"`
		Color      string   `json:"color" validate:"omitempty"`
		Retailer   Retailer `json:"retailer" validate:"required"`
	}

	IngestProductsRequest struct {
		Products []ScrapedProduct `json:"products" validate:"required,min=1,dive"`
	}

	IngestProductsResponse struct {
		Ingested int `json:"ingested"`
	}

	CatalogQuery struct {
		Category string  `json:"category,omitempty"`
		Brand    string  `json:"brand,omitempty"`
		MaxPrice float64 `json:"max_price,omitempty"`
	}

	CatalogProductResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Brand      string    `json:"brand"`
		Price      float64   `json:"price"`
		ImageURL   string    `json:"image_url"`
		ProductURL string    `json:"product_url"`
		Category   string    `json:"category"`
		Color      string    `json:"color"`
		Retailer   Retailer  `json:"retailer"`
		ScrapedAt  time.Time `json:"scraped_at"`
	}
)
