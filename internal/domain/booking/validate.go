package booking

import (
	"regexp"
	"strconv"
	"time"

	"github.com/BruksfildServices01/shop-booking/internal/httperr"
)

// Wire-level error messages. Clients match on these strings.
const (
	MsgInvalidUserID = "Invalid user id"
	MsgInvalidDate   = "Invalid date format"
	MsgShopClosed    = "Shop closed"
	MsgUserNotFound  = "User not found"
	MsgSlotFull      = "Slot full"
)

const dateLayout = "2006-01-02"

var userIDPattern = regexp.MustCompile(`^user_([1-9][0-9]*)$`)

// ParseUserID extracts the numeric id from the user_<n> wire form.
func ParseUserID(s string) (uint, error) {
	m := userIDPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, httperr.ErrBusiness(MsgInvalidUserID)
	}

	id, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return 0, httperr.ErrBusiness(MsgInvalidUserID)
	}

	return uint(id), nil
}

func ValidateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return httperr.ErrBusiness(MsgInvalidDate)
	}
	return nil
}

// ValidateTime rejects times outside shop hours. A time the catalog does not
// carry means the shop is closed then, not that the input is malformed.
func ValidateTime(s string) error {
	if !InCatalog(s) {
		return httperr.ErrBusiness(MsgShopClosed)
	}
	return nil
}
