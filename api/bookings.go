package api

import (
	"net/http"

	"github.com/Domenick1991/alkawthar/internal/auth"
	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/i18n"
	"github.com/Domenick1991/alkawthar/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	responder
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase, locale i18n.Context) *BookingHandler {
	return &BookingHandler{responder: responder{locale: locale}, service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/search", h.search)
	router.GET("/:reference", h.get)
	router.POST("/:reference/cancel", h.cancel)
}

func (h *BookingHandler) list(c *gin.Context) {
	result, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) search(c *gin.Context) {
	result, err := h.service.SearchBookings(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// create books for the session user.
func (h *BookingHandler) create(c *gin.Context) {
	var req booking.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, domain.ErrInvalidRequest)
		return
	}
	if claims := auth.FromContext(c); claims != nil {
		req.UserID = claims.UserID()
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	b, err := h.service.CancelBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
