package dto

import "github.com/fixera/marketplace-api/internal/models"

// PublicVendorDTO is the browse-facing projection of a vendor profile.
// Owner principal, phone and timestamps are withheld.
type PublicVendorDTO struct {
	ID            string  `json:"id"`
	BusinessName  string  `json:"business_name"`
	ServiceType   string  `json:"service_type"`
	PricePerVisit float64 `json:"price_per_visit"`
	Address       string  `json:"address"`
	Description   string  `json:"description"`
}

func PublicVendorFromModel(v models.Vendor) PublicVendorDTO {
	return PublicVendorDTO{
		ID:            v.ID,
		BusinessName:  v.BusinessName,
		ServiceType:   v.ServiceType,
		PricePerVisit: v.PricePerVisit,
		Address:       v.Address,
		Description:   v.Description,
	}
}
