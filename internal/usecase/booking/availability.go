package booking

import (
	"context"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.AvailableTimes(booked), nil
}
