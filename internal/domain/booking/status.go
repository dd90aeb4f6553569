package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "Pending"
	StatusAccepted   Status = "Accepted"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// InitialStatus is the status every booking is created with.
func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Authorization rules
// ===============================

// RequiresCustomer reports whether moving a booking to target is
// restricted to the customer who created it.
func RequiresCustomer(target Status) bool {
	return target == StatusCancelled
}

// RequiresVendorOwner reports whether moving a booking to target is
// restricted to the owner of the vendor the booking references.
func RequiresVendorOwner(target Status) bool {
	return target == StatusAccepted || target == StatusCompleted
}
