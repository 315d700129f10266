package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an application error carrying the HTTP status it renders as.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrEmptyCart blocks checkout submission until the cart has items.
var ErrEmptyCart = New(http.StatusBadRequest, "Your cart is empty. Please add items before checkout.", nil)

// ErrorMiddleware renders errors attached to the gin context. Handlers
// attach an *Error via c.Error and return without writing a body;
// anything else attached renders as a generic internal error.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		appErr, ok := err.(*Error)
		if !ok {
			appErr = New(http.StatusInternalServerError, "Internal server error", err)
		}
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	}
}
