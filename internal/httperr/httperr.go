package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Error string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

// Respond maps an error to its HTTP response. Business errors carry their own
// status; anything else is an infrastructure failure surfaced as a 500 with
// the raw message. Every error is logged before the response goes out.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		log.Printf("%s %s: %s", c.Request.Method, c.Request.URL.Path, be.Message)
		Write(c, be.Status, be.Message)
		return
	}

	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	Internal(c, err.Error())
}
