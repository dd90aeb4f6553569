package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/fixera/marketplace-api/internal/domain/booking"
)

type EarningsSummary struct {
	TotalBookings     int     `json:"total_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	TotalEarnings     float64 `json:"total_earnings"`
}

type VendorEarnings struct {
	repo domain.Repository
}

func NewVendorEarnings(repo domain.Repository) *VendorEarnings {
	return &VendorEarnings{repo: repo}
}

// Execute sums the snapshotted booking prices over completed bookings.
// An owner without a vendor profile gets the zeroed summary, not an
// error: the dashboard renders the same shape either way.
func (uc *VendorEarnings) Execute(
	ctx context.Context,
	ownerID string,
) (*EarningsSummary, error) {

	vendor, err := uc.repo.GetVendorByOwner(ctx, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &EarningsSummary{}, nil
	}
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, err
	}

	summary := &EarningsSummary{TotalBookings: len(bookings)}
	for _, b := range bookings {
		if b.Status == string(domain.StatusCompleted) {
			summary.CompletedBookings++
			summary.TotalEarnings += b.Price
		}
	}

	return summary, nil
}
