package repository

import (
	"context"

	"github.com/fixera/marketplace-api/internal/models"
)

// SeedFixtures loads demo vendors into the repository so the API is
// browsable without a database. Used by the memory storage driver.
func SeedFixtures(ctx context.Context, repo *MarketplaceMemoryRepository) error {
	vendors := []models.Vendor{
		{
			OwnerID:       "demo_plumber",
			BusinessName:  "PipeFix Plumbing",
			ServiceType:   "plumbing",
			Phone:         "555-0101",
			Address:       "12 Canal St",
			PricePerVisit: 500,
			Description:   "Professional pipe fixing and leak repairs.",
		},
		{
			OwnerID:       "demo_electrician",
			BusinessName:  "Volt Electrical",
			ServiceType:   "electrical",
			Phone:         "555-0102",
			Address:       "48 Grid Ave",
			PricePerVisit: 650,
			Description:   "Safe wiring and electrical maintenance.",
		},
		{
			OwnerID:       "demo_ac",
			BusinessName:  "CoolAir Services",
			ServiceType:   "ac",
			Phone:         "555-0103",
			Address:       "7 Breeze Rd",
			PricePerVisit: 800,
			Description:   "AC servicing and gas refilling.",
		},
		{
			OwnerID:       "demo_appliance",
			BusinessName:  "HomeSpin Appliance Care",
			ServiceType:   "appliance",
			Phone:         "555-0104",
			Address:       "91 Drum Ln",
			PricePerVisit: 450,
			Description:   "Repair for washing machines and refrigerators.",
		},
		{
			OwnerID:       "demo_carpenter",
			BusinessName:  "Oak & Dowel Carpentry",
			ServiceType:   "carpentry",
			Phone:         "555-0105",
			Address:       "3 Joinery Way",
			PricePerVisit: 550,
			Description:   "Furniture repair and custom woodwork.",
		},
	}

	for i := range vendors {
		if err := repo.CreateVendor(ctx, &vendors[i]); err != nil {
			return err
		}
	}
	return nil
}
