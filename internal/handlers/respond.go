package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog/internal/dto"
	"microblog/internal/service"
)

// statusFor maps a domain error to an HTTP status and user-facing message.
// Every JSON handler funnels failures through here so the mapping lives in
// one place.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func failure(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{StatusCode: status, Status: "failure", Message: message})
}

func respondErr(c *gin.Context, err error) {
	status, message := statusFor(err)
	failure(c, status, message)
}

func envelope(status int, message string) dto.Response {
	return dto.Response{StatusCode: status, Status: "success", Message: message}
}
