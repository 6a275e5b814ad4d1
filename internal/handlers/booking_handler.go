package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *ucBooking.CreateBooking
}

func NewBookingHandler(create *ucBooking.CreateBooking) *BookingHandler {
	return &BookingHandler{create: create}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type CreateBookingRequest struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	UserID string `json:"user_id"`
}

type CreateBookingResponse struct {
	BookingID string `json:"booking_id"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Date:   req.Date,
		Time:   req.Time,
		UserID: req.UserID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, CreateBookingResponse{
		BookingID: fmt.Sprintf("booking_%d", b.ID),
	})
}
