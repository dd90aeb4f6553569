package models

import "time"

type Vendor struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// Principal of the owning account, issued by the identity provider.
	OwnerID string `gorm:"size:100;uniqueIndex;not null" json:"owner_id"`

	BusinessName  string  `gorm:"size:100;not null" json:"business_name"`
	ServiceType   string  `gorm:"size:30;not null" json:"service_type"`
	Phone         string  `gorm:"size:20" json:"phone"`
	Address       string  `gorm:"size:255" json:"address"`
	PricePerVisit float64 `json:"price_per_visit"`
	Description   string  `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
