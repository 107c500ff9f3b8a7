package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string     `json:"name"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	Password     string     `json:"-"`
	Role         string     `json:"role"`
	IsVerified   bool       `json:"is_verified"`
	IsPremium    bool       `json:"is_premium"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`

	Timestamp
}
