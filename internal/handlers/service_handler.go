package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mentorlink/mentor-booking-api/internal/cache"
	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/httpresp"
	"github.com/mentorlink/mentor-booking-api/internal/middleware"
	ucServices "github.com/mentorlink/mentor-booking-api/internal/usecase/services"
)

type ServiceHandler struct {
	replace *ucServices.ReplaceServices
	cache   *cache.Cache
}

func NewServiceHandler(
	replace *ucServices.ReplaceServices,
	c *cache.Cache,
) *ServiceHandler {
	return &ServiceHandler{replace: replace, cache: c}
}

// An empty (or absent) list is a valid full replace: it clears every
// offering the mentor had.
type ReplaceServicesRequest struct {
	Services []ucServices.ServiceInput `json:"services"`
}

// Update is a full replace of the caller's priced offerings. Every item is
// validated before any row is deleted or inserted.
func (h *ServiceHandler) Update(c *gin.Context) {
	mentorID := c.MustGet(middleware.ContextUserID).(uint)

	var req ReplaceServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid services payload.")
		return
	}

	services, err := h.replace.Execute(c.Request.Context(), mentorID, req.Services)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_name_required"):
			httperr.BadRequest(c, "Each service needs a name.")
		case httperr.IsBusiness(err, "duplicate_service_name"):
			httperr.BadRequest(c, "Service names must be unique.")
		case httperr.IsBusiness(err, "invalid_service_price"):
			httperr.BadRequest(c, "Prices must be positive integers and fees non-negative.")
		case httperr.IsBusiness(err, "price_total_mismatch"):
			httperr.BadRequest(c, "Total price must equal mentor price plus fees.")
		default:
			httperr.Internal(c, "Failed to save services.")
		}
		return
	}

	h.cache.Delete(c.Request.Context(), cache.ServicesKey(mentorID))

	httpresp.List(c, services)
}
