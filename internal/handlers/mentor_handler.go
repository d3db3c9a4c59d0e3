package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mentorlink/mentor-booking-api/internal/cache"
	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/httpresp"
	"github.com/mentorlink/mentor-booking-api/internal/models"
)

// MentorHandler serves the public, unauthenticated mentor surface.
type MentorHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewMentorHandler(db *gorm.DB, c *cache.Cache) *MentorHandler {
	return &MentorHandler{db: db, cache: c}
}

func mentorIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "Invalid mentor id.")
		return 0, false
	}
	return uint(id), true
}

func (h *MentorHandler) List(c *gin.Context) {
	var mentors []models.User
	if err := h.db.
		Where("user_type = ?", models.UserTypeMentor).
		Order("id ASC").
		Find(&mentors).Error; err != nil {
		httperr.Internal(c, "Failed to list mentors.")
		return
	}

	out := make([]gin.H, 0, len(mentors))
	for i := range mentors {
		out = append(out, userView(&mentors[i]))
	}

	httpresp.List(c, out)
}

// GetAvailability returns the stored availability record, or null when the
// mentor never saved one.
func (h *MentorHandler) GetAvailability(c *gin.Context) {
	mentorID, ok := mentorIDParam(c, "id")
	if !ok {
		return
	}

	key := cache.AvailabilityKey(mentorID)

	var cached models.MentorAvailability
	if h.cache.GetJSON(c.Request.Context(), key, &cached) {
		httpresp.OK(c, cached)
		return
	}

	var av models.MentorAvailability
	if err := h.db.
		Where("mentor_id = ?", mentorID).
		First(&av).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httpresp.OK(c, nil)
			return
		}
		httperr.Internal(c, "Failed to load availability.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, av)
	httpresp.OK(c, av)
}

func (h *MentorHandler) GetServices(c *gin.Context) {
	mentorID, ok := mentorIDParam(c, "id")
	if !ok {
		return
	}

	key := cache.ServicesKey(mentorID)

	var cached []models.MentorService
	if h.cache.GetJSON(c.Request.Context(), key, &cached) {
		httpresp.List(c, cached)
		return
	}

	var services []models.MentorService
	if err := h.db.
		Where("mentor_id = ?", mentorID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "Failed to list services.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, services)
	httpresp.List(c, services)
}
