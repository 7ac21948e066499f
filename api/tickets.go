package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/i18n"
	"github.com/gin-gonic/gin"
)

type TicketSource interface {
	TicketDetails(ctx context.Context, ticketNumber string) (*domain.TicketDetails, error)
}

type QREncoder interface {
	PNG(d domain.TicketDetails) ([]byte, error)
}

// TicketHandler serves boarding pass codes.
type TicketHandler struct {
	responder
	tickets TicketSource
	qr      QREncoder
}

func NewTicketHandler(tickets TicketSource, qr QREncoder, locale i18n.Context) *TicketHandler {
	return &TicketHandler{responder: responder{locale: locale}, tickets: tickets, qr: qr}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("/:number", h.get)
	router.GET("/:number/qr", h.qrCode)
}

func (h *TicketHandler) get(c *gin.Context) {
	details, err := h.tickets.TicketDetails(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *TicketHandler) qrCode(c *gin.Context) {
	details, err := h.tickets.TicketDetails(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.fail(c, err)
		return
	}
	png, err := h.qr.PNG(*details)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
