package entities

import (
	"github.com/google/uuid"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	OrderID     string    `gorm:"uniqueIndex" json:"order_id"`
	Plan        string    `json:"plan"` // "premium_monthly", "premium_yearly"
	GrossAmount int64     `json:"gross_amount"`
	Status      string    `json:"status"` // "pending", "settlement", "expire", "cancel", "deny"
	PaymentType string    `json:"payment_type,omitempty"`
	SnapURL     string    `json:"snap_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
