package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/httpresp"
	"github.com/mentorlink/mentor-booking-api/internal/middleware"
	ucBooking "github.com/mentorlink/mentor-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	updateStatus *ucBooking.UpdateBookingStatus
	bookedTimes  *ucBooking.ListBookedTimes
	check        *ucBooking.CheckBookingWithMentor
	myBookings   *ucBooking.ListUserBookings
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateBookingStatus,
	bookedTimes *ucBooking.ListBookedTimes,
	check *ucBooking.CheckBookingWithMentor,
	myBookings *ucBooking.ListUserBookings,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		updateStatus: updateStatus,
		bookedTimes:  bookedTimes,
		check:        check,
		myBookings:   myBookings,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	MentorID     uint   `json:"mentor_id" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	SessionDate  string `json:"session_date" binding:"required"`
	SessionTopic string `json:"session_topic"`
	Notes        string `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	studentID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid booking data.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		MentorID:     req.MentorID,
		StudentID:    studentID,
		ServiceID:    req.ServiceID,
		SessionDate:  req.SessionDate,
		SessionTopic: req.SessionTopic,
		Notes:        req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "mentor_not_found"):
		httperr.NotFound(c, "Mentor not found.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "Service not found for this mentor.")
	case httperr.IsBusiness(err, "invalid_session_date"):
		httperr.BadRequest(c, "Session date must be an ISO-8601 UTC instant.")
	case httperr.IsBusiness(err, "past_session"):
		httperr.BadRequest(c, "Session must start in the future.")
	case httperr.IsBusiness(err, "slot_conflict"):
		httperr.Conflict(c, "That time is already booked. Please pick a different slot.")
	default:
		httperr.Internal(c, "Failed to create the booking.")
	}
}

// ======================================================
// BOOKED TIMES (public)
// ======================================================

func (h *BookingHandler) BookedTimes(c *gin.Context) {
	mentorID, ok := mentorIDParam(c, "mentorId")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "A date query parameter is required.")
		return
	}

	intervals, err := h.bookedTimes.Execute(c.Request.Context(), mentorID, date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "Date must be YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "Failed to list booked times.")
		return
	}

	httpresp.List(c, intervals)
}

// ======================================================
// CHECK (student)
// ======================================================

func (h *BookingHandler) CheckWithMentor(c *gin.Context) {
	studentID := c.MustGet(middleware.ContextUserID).(uint)

	mentorID, ok := mentorIDParam(c, "mentorId")
	if !ok {
		return
	}

	has, err := h.check.Execute(c.Request.Context(), studentID, mentorID)
	if err != nil {
		httperr.Internal(c, "Failed to check bookings.")
		return
	}

	httpresp.OK(c, gin.H{"has_booking": has})
}

// ======================================================
// MY BOOKINGS
// ======================================================

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.myBookings.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "Failed to list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// STATUS CHANGE
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	actorType := c.GetString(middleware.ContextUserType)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || bookingID == 0 {
		httperr.BadRequest(c, "Invalid booking id.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid status payload.")
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), ucBooking.UpdateStatusInput{
		BookingID: uint(bookingID),
		ActorID:   actorID,
		ActorType: actorType,
		Target:    req.Status,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "Booking not found.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "Unknown booking status.")
		case httperr.IsBusiness(err, "status_not_allowed"):
			httperr.Forbidden(c, "Your account cannot apply this status.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "The booking cannot move to this status.")
		default:
			httperr.Internal(c, "Failed to update the booking.")
		}
		return
	}

	httpresp.OK(c, b)
}
