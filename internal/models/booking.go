package models

import "time"

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerID string `gorm:"size:100;index;not null" json:"customer_id"`

	VendorID string `gorm:"type:uuid;index;not null" json:"vendor_id"`

	// Denormalized at creation time so listings don't join vendors.
	VendorName string `gorm:"size:100" json:"vendor_name"`

	Service string `gorm:"size:30" json:"service"`
	Date    string `gorm:"size:10" json:"date"`
	Time    string `gorm:"size:20" json:"time"`

	// Snapshot of the vendor's price-per-visit when the booking was
	// created. Never recomputed from the vendor's current price.
	Price float64 `json:"price"`

	Notes  string `gorm:"type:text" json:"notes"`
	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
