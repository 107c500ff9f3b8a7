package entities

import (
	"github.com/google/uuid"
)

// PreferenceCounter keeps running (likes, total) observation counts for one
// facet of one user's taste. Incrementally updated on every swipe so profile
// builds are O(profile size), not O(full log).
type PreferenceCounter struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_user_dimension_facet" json:"user_id"`
	Dimension string    `gorm:"uniqueIndex:idx_user_dimension_facet" json:"dimension"` // "category", "color", "brand"
	Facet     string    `gorm:"uniqueIndex:idx_user_dimension_facet" json:"facet"`
	Likes     int       `json:"likes"`
	Total     int       `json:"total"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
