package booking

import (
	"context"

	"github.com/fixera/marketplace-api/internal/models"
)

type Repository interface {
	// -------- Vendor lookups --------
	GetVendorByID(
		ctx context.Context,
		id string,
	) (*models.Vendor, error)

	GetVendorByOwner(
		ctx context.Context,
		ownerID string,
	) (*models.Vendor, error)

	// -------- Booking (create / state change) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listings (newest first) --------
	ListBookingsByCustomer(
		ctx context.Context,
		customerID string,
	) ([]models.Booking, error)

	ListBookingsByVendor(
		ctx context.Context,
		vendorID string,
	) ([]models.Booking, error)

	// -------- Aggregation scans --------
	ListBookingsByVendorAndStatus(
		ctx context.Context,
		vendorID string,
		status Status,
	) ([]models.Booking, error)
}
