package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixera/marketplace-api/internal/audit"
	domain "github.com/fixera/marketplace-api/internal/domain/booking"
	"github.com/fixera/marketplace-api/internal/httperr"
	"github.com/fixera/marketplace-api/internal/infra/repository"
	"github.com/fixera/marketplace-api/internal/models"
)

func newTestDispatcher() *audit.Dispatcher {
	nop := zerolog.Nop()
	return audit.NewDispatcher(audit.NewLogSink(&nop), &nop)
}

func setupRepo(t *testing.T) *repository.MarketplaceMemoryRepository {
	t.Helper()
	return repository.NewMarketplaceMemoryRepository()
}

func createVendor(t *testing.T, repo *repository.MarketplaceMemoryRepository, owner string, price float64) *models.Vendor {
	t.Helper()
	v := &models.Vendor{
		OwnerID:       owner,
		BusinessName:  owner + " Services",
		ServiceType:   "plumbing",
		PricePerVisit: price,
	}
	require.NoError(t, repo.CreateVendor(context.Background(), v))
	return v
}

func TestCreateBookingSnapshotsPrice(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	vendor := createVendor(t, repo, "owner_1", 500)

	uc := NewCreateBooking(repo, newTestDispatcher())
	b, err := uc.Execute(ctx, CreateBookingInput{
		CustomerID: "cust_1",
		VendorID:   vendor.ID,
		Service:    "plumbing",
		Date:       "2026-03-14",
		Time:       "10:00",
		Notes:      "leaky sink",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Equal(t, 500.0, b.Price)
	assert.Equal(t, vendor.BusinessName, b.VendorName)

	// vendor reprices, existing booking keeps its snapshot
	vendor.PricePerVisit = 900
	require.NoError(t, repo.UpdateVendor(ctx, vendor))

	stored, err := repo.GetBookingByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, stored.Price)
}

func TestCreateBookingVendorNotFound(t *testing.T) {
	repo := setupRepo(t)

	uc := NewCreateBooking(repo, newTestDispatcher())
	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerID: "cust_1",
		VendorID:   "no-such-vendor",
		Service:    "plumbing",
		Date:       "2026-03-14",
		Time:       "10:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "vendor_not_found"))
}

func TestCancelBookingAsCustomer(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	vendor := createVendor(t, repo, "owner_1", 500)
	create := NewCreateBooking(repo, newTestDispatcher())
	b, err := create.Execute(ctx, CreateBookingInput{
		CustomerID: "cust_1",
		VendorID:   vendor.ID,
		Service:    "plumbing",
		Date:       "2026-03-14",
		Time:       "10:00",
	})
	require.NoError(t, err)

	setStatus := NewSetBookingStatus(repo, newTestDispatcher())

	// someone else cannot cancel
	_, err = setStatus.Execute(ctx, "cust_2", b.ID, string(domain.StatusCancelled))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "not_authorized"))

	// the vendor cannot cancel either, cancellation belongs to the customer
	_, err = setStatus.Execute(ctx, "owner_1", b.ID, string(domain.StatusCancelled))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "not_authorized"))

	updated, err := setStatus.Execute(ctx, "cust_1", b.ID, string(domain.StatusCancelled))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), updated.Status)
	assert.Equal(t, 500.0, updated.Price)
}

func TestAcceptAndCompleteRequireVendorOwner(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	vendorA := createVendor(t, repo, "owner_a", 300)
	createVendor(t, repo, "owner_b", 400)

	create := NewCreateBooking(repo, newTestDispatcher())
	b, err := create.Execute(ctx, CreateBookingInput{
		CustomerID: "cust_1",
		VendorID:   vendorA.ID,
		Service:    "plumbing",
		Date:       "2026-03-14",
		Time:       "10:00",
	})
	require.NoError(t, err)

	setStatus := NewSetBookingStatus(repo, newTestDispatcher())

	// vendor B does not own the referenced vendor profile
	_, err = setStatus.Execute(ctx, "owner_b", b.ID, string(domain.StatusCompleted))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "not_authorized"))

	// the customer cannot accept their own booking
	_, err = setStatus.Execute(ctx, "cust_1", b.ID, string(domain.StatusAccepted))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "not_authorized"))

	accepted, err := setStatus.Execute(ctx, "owner_a", b.ID, string(domain.StatusAccepted))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusAccepted), accepted.Status)

	completed, err := setStatus.Execute(ctx, "owner_a", b.ID, string(domain.StatusCompleted))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), completed.Status)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	vendor := createVendor(t, repo, "owner_1", 500)
	create := NewCreateBooking(repo, newTestDispatcher())
	b, err := create.Execute(ctx, CreateBookingInput{
		CustomerID: "cust_1",
		VendorID:   vendor.ID,
		Service:    "plumbing",
		Date:       "2026-03-14",
		Time:       "10:00",
	})
	require.NoError(t, err)

	setStatus := NewSetBookingStatus(repo, newTestDispatcher())
	_, err = setStatus.Execute(ctx, "cust_1", b.ID, "Archived")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestSetStatusBookingNotFound(t *testing.T) {
	repo := setupRepo(t)

	setStatus := NewSetBookingStatus(repo, newTestDispatcher())
	_, err := setStatus.Execute(context.Background(), "cust_1", "missing", string(domain.StatusCancelled))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestVendorEarnings(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	vendor := createVendor(t, repo, "owner_1", 500)

	create := NewCreateBooking(repo, newTestDispatcher())
	setStatus := NewSetBookingStatus(repo, newTestDispatcher())

	mkBooking := func(date string) *models.Booking {
		b, err := create.Execute(ctx, CreateBookingInput{
			CustomerID: "cust_1",
			VendorID:   vendor.ID,
			Service:    "plumbing",
			Date:       date,
			Time:       "10:00",
		})
		require.NoError(t, err)
		return b
	}

	b1 := mkBooking("2026-01-10")
	b2 := mkBooking("2026-01-20")
	mkBooking("2026-02-05") // stays Pending

	for _, b := range []*models.Booking{b1, b2} {
		_, err := setStatus.Execute(ctx, "owner_1", b.ID, string(domain.StatusAccepted))
		require.NoError(t, err)
		_, err = setStatus.Execute(ctx, "owner_1", b.ID, string(domain.StatusCompleted))
		require.NoError(t, err)
	}

	earnings := NewVendorEarnings(repo)
	summary, err := earnings.Execute(ctx, "owner_1")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalBookings)
	assert.Equal(t, 2, summary.CompletedBookings)
	assert.Equal(t, 1000.0, summary.TotalEarnings)
}

func TestVendorEarningsZeroed(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	earnings := NewVendorEarnings(repo)

	// owner with no profile: zeroed summary, not an error
	summary, err := earnings.Execute(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, &EarningsSummary{}, summary)

	// vendor with no bookings: same shape
	createVendor(t, repo, "owner_1", 500)
	summary, err = earnings.Execute(ctx, "owner_1")
	require.NoError(t, err)
	assert.Equal(t, &EarningsSummary{}, summary)
}

func TestMonthlyAnalytics(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	vendor := createVendor(t, repo, "owner_1", 500)
	create := NewCreateBooking(repo, newTestDispatcher())
	setStatus := NewSetBookingStatus(repo, newTestDispatcher())

	complete := func(date string) {
		b, err := create.Execute(ctx, CreateBookingInput{
			CustomerID: "cust_1",
			VendorID:   vendor.ID,
			Service:    "plumbing",
			Date:       date,
			Time:       "10:00",
		})
		require.NoError(t, err)
		_, err = setStatus.Execute(ctx, "owner_1", b.ID, string(domain.StatusCompleted))
		require.NoError(t, err)
	}

	complete("2026-01-10")
	complete("2026-01-25")
	complete("2026-03-02")

	// pending booking in February must not appear anywhere
	_, err := create.Execute(ctx, CreateBookingInput{
		CustomerID: "cust_1",
		VendorID:   vendor.ID,
		Service:    "plumbing",
		Date:       "2026-02-14",
		Time:       "10:00",
	})
	require.NoError(t, err)

	analytics := NewMonthlyAnalytics(repo)
	report, err := analytics.Execute(ctx, "owner_1")
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalBookings)
	assert.Equal(t, 3, report.CompletedBookings)
	assert.Equal(t, 1500.0, report.TotalEarnings)

	byMonth := make(map[string]float64, len(report.ChartData))
	for _, m := range report.ChartData {
		byMonth[m.Month] = m.Earnings
	}
	assert.Equal(t, map[string]float64{"Jan": 1000, "Mar": 500}, byMonth)
	assert.NotContains(t, byMonth, "Feb")
}

func TestMonthlyAnalyticsBucketsUnparsableDates(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	vendor := createVendor(t, repo, "owner_1", 500)
	create := NewCreateBooking(repo, newTestDispatcher())
	setStatus := NewSetBookingStatus(repo, newTestDispatcher())

	for _, date := range []string{"2026-01-10", "14/03/2026"} {
		b, err := create.Execute(ctx, CreateBookingInput{
			CustomerID: "cust_1",
			VendorID:   vendor.ID,
			Service:    "plumbing",
			Date:       date,
			Time:       "10:00",
		})
		require.NoError(t, err)
		_, err = setStatus.Execute(ctx, "owner_1", b.ID, string(domain.StatusCompleted))
		require.NoError(t, err)
	}

	analytics := NewMonthlyAnalytics(repo)
	report, err := analytics.Execute(ctx, "owner_1")
	require.NoError(t, err)

	assert.Equal(t, 1000.0, report.TotalEarnings)

	// the malformed date keeps its earnings visible in the chart
	var chartTotal float64
	byMonth := make(map[string]float64, len(report.ChartData))
	for _, m := range report.ChartData {
		byMonth[m.Month] = m.Earnings
		chartTotal += m.Earnings
	}
	assert.Equal(t, map[string]float64{"Jan": 500, "Unknown": 500}, byMonth)
	assert.Equal(t, report.TotalEarnings, chartTotal)
}

func TestMonthlyAnalyticsZeroed(t *testing.T) {
	repo := setupRepo(t)

	analytics := NewMonthlyAnalytics(repo)
	report, err := analytics.Execute(context.Background(), "nobody")
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalBookings)
	assert.Empty(t, report.ChartData)
}

func TestListVendorBookingsWithoutProfile(t *testing.T) {
	repo := setupRepo(t)

	list := NewListVendorBookings(repo)
	bookings, err := list.Execute(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

var errStorageDown = errors.New("connection refused")

// downRepo reports a storage outage from every lookup.
type downRepo struct {
	domain.Repository
}

func (downRepo) GetVendorByID(context.Context, string) (*models.Vendor, error) {
	return nil, errStorageDown
}

func (downRepo) GetVendorByOwner(context.Context, string) (*models.Vendor, error) {
	return nil, errStorageDown
}

func (downRepo) GetBookingByID(context.Context, string) (*models.Booking, error) {
	return nil, errStorageDown
}

// ownerLookupDownRepo serves bookings but fails the vendor owner lookup.
type ownerLookupDownRepo struct {
	*repository.MarketplaceMemoryRepository
}

func (ownerLookupDownRepo) GetVendorByOwner(context.Context, string) (*models.Vendor, error) {
	return nil, errStorageDown
}

func TestStorageFailuresPropagateAsErrors(t *testing.T) {
	ctx := context.Background()
	repo := downRepo{}

	_, err := NewCreateBooking(repo, newTestDispatcher()).Execute(ctx, CreateBookingInput{
		CustomerID: "cust_1",
		VendorID:   "v1",
		Service:    "plumbing",
		Date:       "2026-03-14",
		Time:       "10:00",
	})
	require.ErrorIs(t, err, errStorageDown)
	assert.False(t, httperr.IsBusiness(err, "vendor_not_found"))

	_, err = NewSetBookingStatus(repo, newTestDispatcher()).
		Execute(ctx, "cust_1", "b1", string(domain.StatusCancelled))
	require.ErrorIs(t, err, errStorageDown)
	assert.False(t, httperr.IsBusiness(err, "booking_not_found"))

	// outages must not render as healthy zeroed dashboards
	_, err = NewVendorEarnings(repo).Execute(ctx, "owner_1")
	require.ErrorIs(t, err, errStorageDown)

	_, err = NewMonthlyAnalytics(repo).Execute(ctx, "owner_1")
	require.ErrorIs(t, err, errStorageDown)

	_, err = NewListVendorBookings(repo).Execute(ctx, "owner_1")
	require.ErrorIs(t, err, errStorageDown)
}

func TestSetStatusOwnerLookupFailurePropagates(t *testing.T) {
	mem := repository.NewMarketplaceMemoryRepository()
	ctx := context.Background()

	vendor := createVendor(t, mem, "owner_1", 500)
	create := NewCreateBooking(mem, newTestDispatcher())
	b, err := create.Execute(ctx, CreateBookingInput{
		CustomerID: "cust_1",
		VendorID:   vendor.ID,
		Service:    "plumbing",
		Date:       "2026-03-14",
		Time:       "10:00",
	})
	require.NoError(t, err)

	setStatus := NewSetBookingStatus(ownerLookupDownRepo{mem}, newTestDispatcher())
	_, err = setStatus.Execute(ctx, "owner_1", b.ID, string(domain.StatusCompleted))
	require.ErrorIs(t, err, errStorageDown)
	assert.False(t, httperr.IsBusiness(err, "not_authorized"))
}

func TestListCustomerBookingsNewestFirst(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	vendor := createVendor(t, repo, "owner_1", 500)
	create := NewCreateBooking(repo, newTestDispatcher())

	first, err := create.Execute(ctx, CreateBookingInput{
		CustomerID: "cust_1", VendorID: vendor.ID, Service: "plumbing", Date: "2026-01-01", Time: "09:00",
	})
	require.NoError(t, err)
	second, err := create.Execute(ctx, CreateBookingInput{
		CustomerID: "cust_1", VendorID: vendor.ID, Service: "plumbing", Date: "2026-01-02", Time: "09:00",
	})
	require.NoError(t, err)

	list := NewListCustomerBookings(repo)
	bookings, err := list.Execute(ctx, "cust_1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)
}
