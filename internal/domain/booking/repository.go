package booking

import (
	"context"

	"github.com/BruksfildServices01/shop-booking/internal/models"
)

type Repository interface {
	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Availability --------
	ListBookedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	// -------- Booking (create) --------

	// CreateBooking re-checks the slot and inserts inside one atomic unit.
	// A taken (date, time) pair surfaces as the slot-full business error,
	// whether caught by the check or by the unique index.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
