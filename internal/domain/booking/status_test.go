package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorlink/mentor-booking-api/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelledByStudent},
		{StatusPending, StatusCancelledByMentor},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelledByStudent},
		{StatusConfirmed, StatusCancelledByMentor},
		{StatusConfirmed, StatusNoShow},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to Status }{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusNoShow},
		{StatusConfirmed, StatusPending},
		{StatusCompleted, StatusConfirmed},
		{StatusCancelledByStudent, StatusPending},
		{StatusCancelledByMentor, StatusConfirmed},
		{StatusNoShow, StatusCompleted},
		{StatusPending, StatusPending},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	terminal := []Status{
		StatusCompleted,
		StatusCancelledByStudent,
		StatusCancelledByMentor,
		StatusNoShow,
	}
	all := []Status{
		StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelledByStudent, StatusCancelledByMentor, StatusNoShow,
	}

	for _, from := range terminal {
		for _, to := range all {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestAssertTransition(t *testing.T) {
	require.NoError(t, AssertTransition(StatusPending, StatusConfirmed))

	err := AssertTransition(StatusCompleted, StatusConfirmed)
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		"pending", "confirmed", "completed",
		"cancelled_by_student", "cancelled_by_mentor", "no_show",
	} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("cancelled"))
	assert.False(t, ValidStatus(""))
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{"pending", "paid", "refunded", "failed"} {
		assert.True(t, ValidPaymentStatus(s), s)
	}
	assert.False(t, ValidPaymentStatus("chargeback"))
}
