package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mentorlink/mentor-booking-api/internal/audit"
	"github.com/mentorlink/mentor-booking-api/internal/cache"
	"github.com/mentorlink/mentor-booking-api/internal/config"
	"github.com/mentorlink/mentor-booking-api/internal/handlers"
	infraRepo "github.com/mentorlink/mentor-booking-api/internal/infra/repository"
	"github.com/mentorlink/mentor-booking-api/internal/middleware"
	"github.com/mentorlink/mentor-booking-api/internal/notify"
	"github.com/mentorlink/mentor-booking-api/internal/storage"
	ucAvailability "github.com/mentorlink/mentor-booking-api/internal/usecase/availability"
	ucBooking "github.com/mentorlink/mentor-booking-api/internal/usecase/booking"
	ucServices "github.com/mentorlink/mentor-booking-api/internal/usecase/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := notify.NewMailer(cfg)
	readCache := cache.New(cfg.RedisURL, 5*time.Minute)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(repo, auditDispatcher, mailer)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(repo, auditDispatcher, mailer)
	bookedTimesUC := ucBooking.NewListBookedTimes(repo)
	checkBookingUC := ucBooking.NewCheckBookingWithMentor(repo)
	myBookingsUC := ucBooking.NewListUserBookings(repo)

	saveAvailabilityUC := ucAvailability.NewSaveAvailability(repo, auditDispatcher)
	replaceServicesUC := ucServices.NewReplaceServices(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, uploader)
	mentorHandler := handlers.NewMentorHandler(db, readCache)

	availabilityHandler := handlers.NewAvailabilityHandler(saveAvailabilityUC, readCache)
	serviceHandler := handlers.NewServiceHandler(replaceServicesUC, readCache)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateStatusUC,
		bookedTimesUC,
		checkBookingUC,
		myBookingsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/mentors", mentorHandler.List)
		api.GET("/mentors/:id/availability", mentorHandler.GetAvailability)
		api.GET("/mentors/:id/services", mentorHandler.GetServices)
		api.GET("/bookings/booked-times/:mentorId", bookingHandler.BookedTimes)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/profile", meHandler.UpdateProfile)
			secured.POST("/me/photo", meHandler.UploadPhoto)
			secured.GET("/me/bookings", bookingHandler.MyBookings)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			secured.PATCH("/dashboard/bookings/:id/status", bookingHandler.UpdateStatus)

			// ------------------------------
			// MENTOR DASHBOARD
			// ------------------------------
			mentor := secured.Group("/dashboard/mentor")
			mentor.Use(middleware.RequireMentor())
			{
				mentor.PUT("/availability", availabilityHandler.Update)
				mentor.PUT("/services", serviceHandler.Update)
			}

			// ------------------------------
			// STUDENT ACTIONS
			// ------------------------------
			student := secured.Group("/")
			student.Use(middleware.RequireStudent())
			{
				student.POST("/bookings", bookingHandler.Create)
				student.GET("/bookings/check/:mentorId", bookingHandler.CheckWithMentor)
			}
		}
	}
}
