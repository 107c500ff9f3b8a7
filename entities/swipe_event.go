package entities

import (
	"time"

	"github.com/google/uuid"
)

// SwipeEvent is append-only. Rows are never updated or deleted; the preference
// counters are a cache that can always be rebuilt by replaying these rows.
type SwipeEvent struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `gorm:"index" json:"user_id"`
	OutfitSignature  string    `gorm:"index" json:"outfit_signature"`
	Action           string    `json:"action"` // "accept", "reject", "super_accept"
	Occasion         string    `json:"occasion"`
	WeatherTemp      float64   `json:"weather_temp"`
	WeatherCondition string    `json:"weather_condition"`
	Precipitation    float64   `json:"precipitation"`
	ItemFacets       string    `json:"item_facets" gorm:"type:text"` // JSON snapshot of the outfit's category/color/brand facets
	CreatedAt        time.Time `gorm:"type:timestamp;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
