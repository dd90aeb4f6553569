package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fixera/marketplace-api/internal/httperr"
	"github.com/fixera/marketplace-api/internal/httpresp"
	"github.com/fixera/marketplace-api/internal/middleware"
	ucBooking "github.com/fixera/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	setStatusUC    *ucBooking.SetBookingStatus
	listCustomerUC *ucBooking.ListCustomerBookings
	listVendorUC   *ucBooking.ListVendorBookings
	earningsUC     *ucBooking.VendorEarnings
	analyticsUC    *ucBooking.MonthlyAnalytics
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	setStatusUC *ucBooking.SetBookingStatus,
	listCustomerUC *ucBooking.ListCustomerBookings,
	listVendorUC *ucBooking.ListVendorBookings,
	earningsUC *ucBooking.VendorEarnings,
	analyticsUC *ucBooking.MonthlyAnalytics,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		setStatusUC:    setStatusUC,
		listCustomerUC: listCustomerUC,
		listVendorUC:   listVendorUC,
		earningsUC:     earningsUC,
		analyticsUC:    analyticsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	VendorID string `json:"vendor_id" binding:"required"`
	Service  string `json:"service" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Notes    string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := middleware.Principal(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID: customerID,
		VendorID:   req.VendorID,
		Service:    req.Service,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *BookingHandler) ListForCustomer(c *gin.Context) {
	bookings, err := h.listCustomerUC.Execute(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListForVendor(c *gin.Context) {
	bookings, err := h.listVendorUC.Execute(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// STATUS UPDATE
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actorID := middleware.Principal(c)
	bookingID := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	b, err := h.setStatusUC.Execute(c.Request.Context(), actorID, bookingID, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// AGGREGATIONS
// ======================================================

func (h *BookingHandler) Earnings(c *gin.Context) {
	summary, err := h.earningsUC.Execute(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, summary)
}

func (h *BookingHandler) Analytics(c *gin.Context) {
	report, err := h.analyticsUC.Execute(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, report)
}
