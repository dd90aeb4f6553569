package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainBooking "github.com/fixera/marketplace-api/internal/domain/booking"
	domainVendor "github.com/fixera/marketplace-api/internal/domain/vendor"
	"github.com/fixera/marketplace-api/internal/httperr"
	"github.com/fixera/marketplace-api/internal/models"
)

const pgUniqueViolation = "23505"

type MarketplaceGormRepository struct {
	db *gorm.DB
}

func NewMarketplaceGormRepository(db *gorm.DB) *MarketplaceGormRepository {
	return &MarketplaceGormRepository{db: db}
}

// --------------------------------------------------
// Vendor
// --------------------------------------------------

func (r *MarketplaceGormRepository) CreateVendor(
	ctx context.Context,
	v *models.Vendor,
) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		// The owner_id unique index backstops the advisory existence
		// pre-check: a concurrent create that slips past it lands here.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return httperr.ErrBusiness("vendor_profile_exists")
		}
		return err
	}
	return nil
}

func (r *MarketplaceGormRepository) UpdateVendor(
	ctx context.Context,
	v *models.Vendor,
) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *MarketplaceGormRepository) GetVendorByID(
	ctx context.Context,
	id string,
) (*models.Vendor, error) {

	var v models.Vendor
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *MarketplaceGormRepository) GetVendorByOwner(
	ctx context.Context,
	ownerID string,
) (*models.Vendor, error) {

	var v models.Vendor
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *MarketplaceGormRepository) ListVendors(
	ctx context.Context,
) ([]models.Vendor, error) {

	var vendors []models.Vendor
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *MarketplaceGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *MarketplaceGormRepository) GetBookingByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *MarketplaceGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *MarketplaceGormRepository) ListBookingsByCustomer(
	ctx context.Context,
	customerID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MarketplaceGormRepository) ListBookingsByVendor(
	ctx context.Context,
	vendorID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MarketplaceGormRepository) ListBookingsByVendorAndStatus(
	ctx context.Context,
	vendorID string,
	status domainBooking.Status,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND status = ?", vendorID, string(status)).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time checks
var (
	_ domainBooking.Repository = (*MarketplaceGormRepository)(nil)
	_ domainVendor.Repository  = (*MarketplaceGormRepository)(nil)
)
