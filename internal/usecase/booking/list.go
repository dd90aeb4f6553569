package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/fixera/marketplace-api/internal/domain/booking"
	"github.com/fixera/marketplace-api/internal/models"
)

type ListCustomerBookings struct {
	repo domain.Repository
}

func NewListCustomerBookings(repo domain.Repository) *ListCustomerBookings {
	return &ListCustomerBookings{repo: repo}
}

func (uc *ListCustomerBookings) Execute(
	ctx context.Context,
	customerID string,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsByCustomer(ctx, customerID)
}

type ListVendorBookings struct {
	repo domain.Repository
}

func NewListVendorBookings(repo domain.Repository) *ListVendorBookings {
	return &ListVendorBookings{repo: repo}
}

// Execute lists the bookings addressed to the caller's vendor profile.
// A caller without a profile gets an empty list, not an error.
func (uc *ListVendorBookings) Execute(
	ctx context.Context,
	ownerID string,
) ([]models.Booking, error) {

	vendor, err := uc.repo.GetVendorByOwner(ctx, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Booking{}, nil
	}
	if err != nil {
		return nil, err
	}

	return uc.repo.ListBookingsByVendor(ctx, vendor.ID)
}
