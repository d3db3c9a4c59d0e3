package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/mentor-booking-api/internal/cache"
	"github.com/mentorlink/mentor-booking-api/internal/domain/schedule"
	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/httpresp"
	"github.com/mentorlink/mentor-booking-api/internal/middleware"
	ucAvailability "github.com/mentorlink/mentor-booking-api/internal/usecase/availability"
)

type AvailabilityHandler struct {
	save  *ucAvailability.SaveAvailability
	cache *cache.Cache
}

func NewAvailabilityHandler(
	save *ucAvailability.SaveAvailability,
	c *cache.Cache,
) *AvailabilityHandler {
	return &AvailabilityHandler{save: save, cache: c}
}

type SaveAvailabilityRequest struct {
	Timezone string                          `json:"timezone" binding:"required"`
	Schedule map[string][]schedule.SlotInput `json:"schedule" binding:"required"`
}

// Update replaces the caller's whole weekly schedule. The first validation
// violation is reported and nothing is written.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	mentorID := c.MustGet(middleware.ContextUserID).(uint)

	var req SaveAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid availability payload.")
		return
	}

	saved, err := h.save.Execute(c.Request.Context(), ucAvailability.SaveAvailabilityInput{
		MentorID: mentorID,
		Timezone: req.Timezone,
		Schedule: req.Schedule,
	})
	if err != nil {
		var ve *schedule.ValidationError
		if errors.As(err, &ve) {
			httperr.BadRequest(c, ve.Message)
			return
		}
		httperr.Internal(c, "Failed to save availability.")
		return
	}

	h.cache.Delete(c.Request.Context(), cache.AvailabilityKey(mentorID))

	httpresp.OK(c, saved)
}
