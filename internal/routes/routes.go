package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shop-booking/internal/audit"
	"github.com/BruksfildServices01/shop-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/shop-booking/internal/infra/repository"
	ucBooking "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	slotHandler := handlers.NewSlotHandler(availabilityUC)
	bookingHandler := handlers.NewBookingHandler(createBookingUC)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/slots", slotHandler.List)
	r.POST("/bookings", bookingHandler.Create)
}
