package booking

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/models"
)

// fakeRepo is an in-memory Repository. The mutex around the check-and-insert
// stands in for the transactional row lock of the real store.
type fakeRepo struct {
	mu     sync.Mutex
	users  map[uint]models.User
	booked map[string][]string
	nextID uint

	listErr   error
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  make(map[uint]models.User),
		booked: make(map[string][]string),
	}
}

func (r *fakeRepo) addUser(name string) uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.users[r.nextID] = models.User{ID: r.nextID, Name: name}
	return r.nextID
}

func (r *fakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, httperr.ErrBusiness(domain.MsgUserNotFound)
	}
	return &u, nil
}

func (r *fakeRepo) ListBookedTimes(ctx context.Context, date string) ([]string, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.booked[date]...), nil
}

func (r *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.booked[b.Date] {
		if t == b.Time {
			return httperr.ErrBusiness(domain.MsgSlotFull)
		}
	}

	r.booked[b.Date] = append(r.booked[b.Date], b.Time)
	r.nextID++
	b.ID = r.nextID
	return nil
}

func (r *fakeRepo) bookingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, times := range r.booked {
		n += len(times)
	}
	return n
}

var _ domain.Repository = (*fakeRepo)(nil)
