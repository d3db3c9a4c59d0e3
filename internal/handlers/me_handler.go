package handlers

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/httpresp"
	"github.com/mentorlink/mentor-booking-api/internal/images"
	"github.com/mentorlink/mentor-booking-api/internal/middleware"
	"github.com/mentorlink/mentor-booking-api/internal/models"
	"github.com/mentorlink/mentor-booking-api/internal/storage"
)

const maxPhotoBytes = 8 << 20

type MeHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewMeHandler(db *gorm.DB, uploader *storage.Uploader) *MeHandler {
	return &MeHandler{db: db, uploader: uploader}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "Account not found.")
		return
	}

	httpresp.OK(c, userView(&user))
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Headline *string `json:"headline,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "Account not found.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid profile data.")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Headline != nil {
		user.Headline = *req.Headline
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "Failed to update the profile.")
		return
	}

	httpresp.OK(c, userView(&user))
}

// UploadPhoto re-encodes the submitted image to webp and stores it in the
// object bucket, replacing whatever photo URL the account had.
func (h *MeHandler) UploadPhoto(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "Photo storage is not configured.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "Account not found.")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "A photo file is required.")
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		httperr.BadRequest(c, "Photo is too large.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "Failed to read the photo.")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes+1))
	if err != nil {
		httperr.Internal(c, "Failed to read the photo.")
		return
	}

	encoded, err := images.ToProfileWebP(raw)
	if err != nil {
		httperr.BadRequest(c, "The file is not a supported image.")
		return
	}

	key := fmt.Sprintf("profile-photos/%d-%d.webp", userID, time.Now().Unix())
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "Failed to store the photo.")
		return
	}

	user.PhotoURL = url
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "Failed to update the profile.")
		return
	}

	httpresp.OK(c, gin.H{"photo_url": url})
}
