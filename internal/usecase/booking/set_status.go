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

type SetBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetBookingStatus {
	return &SetBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves a booking to a new status, enforcing the per-target
// authorization rules: only the customer may cancel, only the owner of
// the referenced vendor may accept or complete. The ownership check
// re-queries the registry on every call.
func (uc *SetBookingStatus) Execute(
	ctx context.Context,
	actorID string,
	bookingID string,
	newStatus string,
) (*models.Booking, error) {

	if !domain.IsValidStatus(newStatus) {
		return nil, httperr.ErrBusiness("invalid_status")
	}
	target := domain.Status(newStatus)

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return nil, err
	}

	if domain.RequiresCustomer(target) {
		if b.CustomerID != actorID {
			return nil, httperr.ErrBusiness("not_authorized")
		}
	}

	if domain.RequiresVendorOwner(target) {
		vendor, err := uc.repo.GetVendorByOwner(ctx, actorID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_authorized")
		}
		if err != nil {
			return nil, err
		}
		if vendor.ID != b.VendorID {
			return nil, httperr.ErrBusiness("not_authorized")
		}
	}

	// In-place overwrite; no transition history is kept.
	b.Status = string(target)
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncStatusChange(b.Status)

	uc.audit.Dispatch(audit.Event{
		Principal: actorID,
		Action:    "booking_status_changed",
		Entity:    "booking",
		EntityID:  b.ID,
		Metadata:  map[string]string{"status": b.Status},
	})

	return b, nil
}
