package apperror

import (
	"errors"

	"meeting-notes-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// APIError is the body of every error response.
type APIError struct {
	Detail string `json:"detail"`
}

// Respond renders err with the status of its kind and aborts the request.
// Errors that were never classified are reported as unclassified 500s.
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Kind: KindUnclassified, Detail: err.Error(), Err: err}
	}

	metrics.ErrorsTotal.WithLabelValues(e.Kind.String()).Inc()
	_ = c.Error(err)
	c.AbortWithStatusJSON(e.Kind.HTTPStatus(), APIError{Detail: e.Detail})
}

// AbortWithBadRequest sends a 400 for a request that could not be bound.
func AbortWithBadRequest(c *gin.Context, err error) {
	Respond(c, Wrap(KindBadRequest, "Invalid request body", err))
}
