package httperr

import (
	"errors"
	"net/http"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// statusByCode maps business error codes to HTTP statuses. Codes not
// listed here surface as internal errors.
var statusByCode = map[string]int{
	"vendor_not_found":         http.StatusNotFound,
	"booking_not_found":        http.StatusNotFound,
	"vendor_profile_not_found": http.StatusNotFound,
	"not_authorized":           http.StatusForbidden,
	"vendor_profile_exists":    http.StatusConflict,
	"invalid_status":           http.StatusBadRequest,
	"invalid_service_type":     http.StatusBadRequest,
	"missing_business_name":    http.StatusBadRequest,
	"invalid_price":            http.StatusBadRequest,
}

// StatusOf resolves the HTTP status for a business error code.
func StatusOf(code string) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
