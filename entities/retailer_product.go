package entities

import (
	"time"

	"github.com/google/uuid"
)

type RetailerProduct struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ExternalID   string    `gorm:"uniqueIndex" json:"external_id"` // md5 of the product URL, upsert key
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	ProductURL   string    `json:"product_url"`
	Category     string    `json:"category"`
	Color        string    `json:"color"`
	Formality    string    `json:"formality"`
	Conditions   string    `json:"conditions"`
	MinTemp      float64   `json:"min_temp"`
	MaxTemp      float64   `json:"max_temp"`
	RetailerID   string    `json:"retailer_id"`
	RetailerName string    `json:"retailer_name"`
	ScrapedAt    time.Time `gorm:"type:timestamp" json:"scraped_at"`

	Timestamp
}
