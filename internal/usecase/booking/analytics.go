package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/fixera/marketplace-api/internal/domain/booking"
)

type MonthEarnings struct {
	Month    string  `json:"month"`
	Earnings float64 `json:"earnings"`
}

type AnalyticsReport struct {
	TotalBookings     int             `json:"total_bookings"`
	CompletedBookings int             `json:"completed_bookings"`
	TotalEarnings     float64         `json:"total_earnings"`
	ChartData         []MonthEarnings `json:"chart_data"`
}

type MonthlyAnalytics struct {
	repo domain.Repository
}

func NewMonthlyAnalytics(repo domain.Repository) *MonthlyAnalytics {
	return &MonthlyAnalytics{repo: repo}
}

// Execute builds the monthly earnings breakdown over completed
// bookings. The month label comes from the booking's requested date,
// not its creation timestamp. Months appear in first-seen order and
// months with no completed bookings are absent; the chart component
// draws exactly what it receives. Bookings whose date fails to parse
// land in an "Unknown" bucket, so the chart always sums to
// TotalEarnings.
func (uc *MonthlyAnalytics) Execute(
	ctx context.Context,
	ownerID string,
) (*AnalyticsReport, error) {

	vendor, err := uc.repo.GetVendorByOwner(ctx, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &AnalyticsReport{ChartData: []MonthEarnings{}}, nil
	}
	if err != nil {
		return nil, err
	}

	completed, err := uc.repo.ListBookingsByVendorAndStatus(
		ctx,
		vendor.ID,
		domain.StatusCompleted,
	)
	if err != nil {
		return nil, err
	}

	report := &AnalyticsReport{
		TotalBookings:     len(completed),
		CompletedBookings: len(completed),
		ChartData:         []MonthEarnings{},
	}

	monthIdx := make(map[string]int)
	for _, b := range completed {
		report.TotalEarnings += b.Price

		month := "Unknown"
		if date, err := time.Parse("2006-01-02", b.Date); err == nil {
			month = date.Format("Jan")
		}

		if i, ok := monthIdx[month]; ok {
			report.ChartData[i].Earnings += b.Price
			continue
		}
		monthIdx[month] = len(report.ChartData)
		report.ChartData = append(report.ChartData, MonthEarnings{
			Month:    month,
			Earnings: b.Price,
		})
	}

	return report, nil
}
