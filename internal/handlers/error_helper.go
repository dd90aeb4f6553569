package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fixera/marketplace-api/internal/httperr"
)

// messages maps business codes to user-facing text. Callers display
// the message and retry manually; nothing is retried server side.
var messages = map[string]string{
	"vendor_not_found":         "Vendor not found.",
	"booking_not_found":        "Booking not found.",
	"vendor_profile_not_found": "Vendor profile not found.",
	"not_authorized":           "Not authorized.",
	"vendor_profile_exists":    "Vendor profile already exists.",
	"invalid_status":           "Unknown booking status.",
	"invalid_service_type":     "Unknown service type.",
	"missing_business_name":    "Business name is required.",
	"invalid_price":            "Price per visit must not be negative.",
}

func writeError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		msg, ok := messages[be.Code]
		if !ok {
			msg = "Request failed."
		}
		httperr.Write(c, httperr.StatusOf(be.Code), be.Code, msg)
		return
	}

	httperr.Write(c, http.StatusInternalServerError, "internal_error", "Something went wrong.")
}
