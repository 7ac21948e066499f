package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/i18n"
	"github.com/Domenick1991/alkawthar/internal/service/reference"
	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	responder
	service reference.ReferenceUseCase
}

func NewReferenceHandler(service reference.ReferenceUseCase, locale i18n.Context) *ReferenceHandler {
	return &ReferenceHandler{responder: responder{locale: locale}, service: service}
}

func (h *ReferenceHandler) Register(router *gin.RouterGroup) {
	router.GET("/resolve", h.resolve)
	router.GET("/:kind", h.options)
}

func (h *ReferenceHandler) options(c *gin.Context) {
	result, err := h.service.Options(c.Request.Context(), domain.OptionKind(c.Param("kind")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// resolve maps a display label back to its id: ?kind=airports&label=DXB - ...
func (h *ReferenceHandler) resolve(c *gin.Context) {
	kind := domain.OptionKind(c.Query("kind"))
	label := c.Query("label")
	id, err := h.service.ResolveLabel(c.Request.Context(), kind, label)
	if errors.Is(err, domain.ErrNotFound) {
		err = domain.ErrInvalidSelection(string(kind), label)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.Option{ID: id, Label: label})
}
