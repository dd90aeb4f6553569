package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fixera/marketplace-api/internal/audit"
	domain "github.com/fixera/marketplace-api/internal/domain/booking"
	"github.com/fixera/marketplace-api/internal/httperr"
	"github.com/fixera/marketplace-api/internal/metrics"
	"github.com/fixera/marketplace-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID string

	VendorID string
	Service  string
	Date     string
	Time     string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	vendor, err := uc.repo.GetVendorByID(ctx, in.VendorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("vendor_not_found")
	}
	if err != nil {
		return nil, err
	}

	// Price is snapshotted from the vendor's current rate. Later
	// vendor repricing never touches existing bookings.
	b := &models.Booking{
		CustomerID: in.CustomerID,
		VendorID:   vendor.ID,
		VendorName: vendor.BusinessName,
		Service:    in.Service,
		Date:       in.Date,
		Time:       in.Time,
		Price:      vendor.PricePerVisit,
		Notes:      in.Notes,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated(b.Service)

	uc.audit.Dispatch(audit.Event{
		Principal: in.CustomerID,
		Action:    "booking_created",
		Entity:    "booking",
		EntityID:  b.ID,
	})

	return b, nil
}
