package entities

import (
	"github.com/google/uuid"
)

type WardrobeItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"` // "top", "bottom", "outerwear", "shoes", "accessory"
	Color      string    `json:"color"`
	Brand      string    `json:"brand"`
	Price      float64   `json:"price,omitempty"`
	Formality  string    `json:"formality"`  // comma separated: "casual,smart_casual"
	Conditions string    `json:"conditions"` // comma separated: "clear,cloudy,rain"
	MinTemp    float64   `json:"min_temp"`
	MaxTemp    float64   `json:"max_temp"`
	ImageURL   string    `json:"image_url,omitempty"`
	IsDeleted  bool      `json:"is_deleted"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
