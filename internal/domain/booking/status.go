package booking

import "github.com/mentorlink/mentor-booking-api/internal/httperr"

// ===============================
// Booking status
// ===============================

type Status string

const (
	StatusPending            Status = "pending"
	StatusConfirmed          Status = "confirmed"
	StatusCompleted          Status = "completed"
	StatusCancelledByStudent Status = "cancelled_by_student"
	StatusCancelledByMentor  Status = "cancelled_by_mentor"
	StatusNoShow             Status = "no_show"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

func InitialStatus() Status { return StatusPending }

func InitialPaymentStatus() PaymentStatus { return PaymentPending }

func IsCancelled(s Status) bool {
	return s == StatusCancelledByStudent || s == StatusCancelledByMentor
}

// CancelledStatuses is the filter value for every "non-cancelled" query.
func CancelledStatuses() []string {
	return []string{string(StatusCancelledByStudent), string(StatusCancelledByMentor)}
}

// ===============================
// Transitions
// ===============================

// pending -> confirmed -> completed; pending|confirmed may be cancelled by
// either side; confirmed -> no_show. Everything else is terminal.
var transitions = map[Status][]Status{
	StatusPending: {
		StatusConfirmed,
		StatusCancelledByStudent,
		StatusCancelledByMentor,
	},
	StatusConfirmed: {
		StatusCompleted,
		StatusCancelledByStudent,
		StatusCancelledByMentor,
		StatusNoShow,
	},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelledByStudent, StatusCancelledByMentor, StatusNoShow:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
		return true
	}
	return false
}

// AssertTransition guards every status write so callers cannot apply an
// illegal transition.
func AssertTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
