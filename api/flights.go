package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/i18n"
	"github.com/Domenick1991/alkawthar/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	responder
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase, locale i18n.Context) *FlightHandler {
	return &FlightHandler{responder: responder{locale: locale}, service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/search", h.search)
	router.GET("/available", h.available)
	router.GET("/:id", h.get)
}

// list accepts ?sort=<field>&desc=true. Unknown fields sort by departure.
func (h *FlightHandler) list(c *gin.Context) {
	desc, _ := strconv.ParseBool(c.Query("desc"))
	result, err := h.service.List(c.Request.Context(), domain.FlightSort{
		Field: domain.FlightSortField(c.Query("sort")),
		Desc:  desc,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) search(c *gin.Context) {
	result, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) available(c *gin.Context) {
	result, err := h.service.Available(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flights.CreateFlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, domain.ErrInvalidRequest)
		return
	}
	flight, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidRequest
	}
	return id, nil
}
