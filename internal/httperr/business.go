package httperr

import (
	"errors"
	"net/http"
)

// BusinessError is an expected, client-recoverable outcome (bad input, user
// missing, slot taken). It travels from usecases and repositories up to the
// handler boundary, which writes it with its own status.
type BusinessError struct {
	Status  int
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrBusiness(message string) error {
	return BusinessError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func IsBusiness(err error, message string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Message == message
	}
	return false
}
