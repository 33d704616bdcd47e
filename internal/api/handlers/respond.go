package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/improvemycity/portal-go/internal/application"
	"github.com/improvemycity/portal-go/pkg/response"
)

// writeError maps a service failure class onto the HTTP status code.
// Every failure surfaces to the caller; nothing degrades to a silent
// success.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, application.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, application.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, application.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, application.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, application.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, application.ErrUpstream):
		status = http.StatusBadGateway
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
