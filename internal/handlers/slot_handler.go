package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	availability *ucBooking.GetAvailability
}

func NewSlotHandler(availability *ucBooking.GetAvailability) *SlotHandler {
	return &SlotHandler{availability: availability}
}

// ======================================================
// RESPONSES
// ======================================================

type AvailableTimesResponse struct {
	AvailableTimes []string `json:"available_times"`
}

// ======================================================
// LIST
// ======================================================

func (h *SlotHandler) List(c *gin.Context) {
	times, err := h.availability.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, AvailableTimesResponse{AvailableTimes: times})
}
