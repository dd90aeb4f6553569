package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainBooking "github.com/fixera/marketplace-api/internal/domain/booking"
	domainVendor "github.com/fixera/marketplace-api/internal/domain/vendor"
	"github.com/fixera/marketplace-api/internal/httperr"
	"github.com/fixera/marketplace-api/internal/models"
)

// MarketplaceMemoryRepository is an in-memory implementation of the
// domain repositories. It backs unit tests and the memory storage
// driver. Instances are isolated: construct one per test instead of
// sharing process-global state.
type MarketplaceMemoryRepository struct {
	mu sync.RWMutex

	vendors  map[string]models.Vendor
	bookings map[string]models.Booking

	// monotonic insertion counter, breaks created_at ties in listings
	seq   int64
	seqOf map[string]int64
	nowFn func() time.Time
}

func NewMarketplaceMemoryRepository() *MarketplaceMemoryRepository {
	return &MarketplaceMemoryRepository{
		vendors:  make(map[string]models.Vendor),
		bookings: make(map[string]models.Booking),
		seqOf:    make(map[string]int64),
		nowFn:    time.Now,
	}
}

// --------------------------------------------------
// Vendor
// --------------------------------------------------

func (r *MarketplaceMemoryRepository) CreateVendor(
	ctx context.Context,
	v *models.Vendor,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.vendors {
		if existing.OwnerID == v.OwnerID {
			return httperr.ErrBusiness("vendor_profile_exists")
		}
	}

	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	now := r.nowFn()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now

	r.seq++
	r.seqOf[v.ID] = r.seq
	r.vendors[v.ID] = *v
	return nil
}

func (r *MarketplaceMemoryRepository) UpdateVendor(
	ctx context.Context,
	v *models.Vendor,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vendors[v.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	v.UpdatedAt = r.nowFn()
	r.vendors[v.ID] = *v
	return nil
}

func (r *MarketplaceMemoryRepository) GetVendorByID(
	ctx context.Context,
	id string,
) (*models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vendors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (r *MarketplaceMemoryRepository) GetVendorByOwner(
	ctx context.Context,
	ownerID string,
) (*models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.vendors {
		if v.OwnerID == ownerID {
			vendor := v
			return &vendor, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MarketplaceMemoryRepository) ListVendors(
	ctx context.Context,
) ([]models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendors := make([]models.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		vendors = append(vendors, v)
	}
	sort.SliceStable(vendors, func(i, j int) bool {
		return r.newer(vendors[i].CreatedAt, vendors[i].ID, vendors[j].CreatedAt, vendors[j].ID)
	})
	return vendors, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *MarketplaceMemoryRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := r.nowFn()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	r.seq++
	r.seqOf[b.ID] = r.seq
	r.bookings[b.ID] = *b
	return nil
}

func (r *MarketplaceMemoryRepository) GetBookingByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *MarketplaceMemoryRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	b.UpdatedAt = r.nowFn()
	r.bookings[b.ID] = *b
	return nil
}

func (r *MarketplaceMemoryRepository) ListBookingsByCustomer(
	ctx context.Context,
	customerID string,
) ([]models.Booking, error) {
	return r.listBookings(func(b models.Booking) bool {
		return b.CustomerID == customerID
	})
}

func (r *MarketplaceMemoryRepository) ListBookingsByVendor(
	ctx context.Context,
	vendorID string,
) ([]models.Booking, error) {
	return r.listBookings(func(b models.Booking) bool {
		return b.VendorID == vendorID
	})
}

func (r *MarketplaceMemoryRepository) ListBookingsByVendorAndStatus(
	ctx context.Context,
	vendorID string,
	status domainBooking.Status,
) ([]models.Booking, error) {
	return r.listBookings(func(b models.Booking) bool {
		return b.VendorID == vendorID && b.Status == string(status)
	})
}

func (r *MarketplaceMemoryRepository) listBookings(
	match func(models.Booking) bool,
) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]models.Booking, 0)
	for _, b := range r.bookings {
		if match(b) {
			bookings = append(bookings, b)
		}
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return r.newer(bookings[i].CreatedAt, bookings[i].ID, bookings[j].CreatedAt, bookings[j].ID)
	})
	return bookings, nil
}

// newer orders records newest first, breaking created_at ties by
// insertion sequence. Callers must hold at least the read lock.
func (r *MarketplaceMemoryRepository) newer(ti time.Time, idI string, tj time.Time, idJ string) bool {
	if ti.Equal(tj) {
		return r.seqOf[idI] > r.seqOf[idJ]
	}
	return ti.After(tj)
}

// Compile-time checks
var (
	_ domainBooking.Repository = (*MarketplaceMemoryRepository)(nil)
	_ domainVendor.Repository  = (*MarketplaceMemoryRepository)(nil)
)
