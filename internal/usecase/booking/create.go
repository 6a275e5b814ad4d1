package booking

import (
	"context"

	"github.com/BruksfildServices01/shop-booking/internal/audit"
	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Date   string
	Time   string
	UserID string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates input shape before any store access, then checks the user
// and finally the slot. The ordering decides which error a bad request gets.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	userID, err := domain.ParseUserID(in.UserID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateDate(in.Date); err != nil {
		return nil, err
	}

	if err := domain.ValidateTime(in.Time); err != nil {
		return nil, err
	}

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		UserID: &user.ID,
		Date:   in.Date,
		Time:   in.Time,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &user.ID,
			Action:   "booking_created",
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	return b, nil
}
