package api

import (
	"net/http"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/i18n"
	"github.com/Domenick1991/alkawthar/internal/service/passengers"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	responder
	service passengers.PassengerUseCase
}

func NewPassengerHandler(service passengers.PassengerUseCase, locale i18n.Context) *PassengerHandler {
	return &PassengerHandler{responder: responder{locale: locale}, service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.GET("/:id/tickets", h.tickets)
}

func (h *PassengerHandler) list(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PassengerHandler) search(c *gin.Context) {
	result, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PassengerHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req domain.PassengerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, domain.ErrInvalidRequest)
		return
	}
	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PassengerHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var req domain.PassengerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, domain.ErrInvalidRequest)
		return
	}
	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PassengerHandler) tickets(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	result, err := h.service.Tickets(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
