package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/alkawthar/internal/auth"
	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/i18n"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// responder renders service errors in the locale of the request.
type responder struct {
	locale i18n.Context
}

func (r responder) fail(c *gin.Context, err error) {
	status := statusOf(err)
	message := err.Error()
	if domain.IsValidation(err) {
		message = r.locale.WithAcceptLanguage(c.GetHeader("Accept-Language")).Localize(err)
	}
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")
	}
	c.JSON(status, gin.H{"error": message})
}

func statusOf(err error) int {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPassengerNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrSeatLocked):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
