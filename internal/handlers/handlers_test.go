package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

// ------------------------------------------------------
// Fake repository
// ------------------------------------------------------

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

// ------------------------------------------------------
// Router wiring, mirroring cmd/api + internal/routes
// ------------------------------------------------------

func setupRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	availabilityUC := ucBooking.NewGetAvailability(repo)
	createBookingUC := ucBooking.NewCreateBooking(repo, nil)

	r.GET("/slots", NewSlotHandler(availabilityUC).List)
	r.POST("/bookings", NewBookingHandler(createBookingUC).Create)

	return r
}

func doGET(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func doPOST(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}
