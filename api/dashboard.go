package api

import (
	"net/http"

	"github.com/Domenick1991/alkawthar/internal/i18n"
	"github.com/Domenick1991/alkawthar/internal/service/dashboard"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	responder
	service dashboard.DashboardUseCase
}

func NewDashboardHandler(service dashboard.DashboardUseCase, locale i18n.Context) *DashboardHandler {
	return &DashboardHandler{responder: responder{locale: locale}, service: service}
}

func (h *DashboardHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.stats)
}

func (h *DashboardHandler) stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	locale := h.locale.WithAcceptLanguage(c.GetHeader("Accept-Language"))
	c.JSON(http.StatusOK, gin.H{
		"stats":     stats,
		"title":     locale.Message("app_title"),
		"theme":     locale.Theme,
		"direction": direction(locale),
	})
}

func direction(locale i18n.Context) string {
	if locale.IsRTL() {
		return "rtl"
	}
	return "ltr"
}
