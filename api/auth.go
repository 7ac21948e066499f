package api

import (
	"net/http"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/i18n"
	"github.com/Domenick1991/alkawthar/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	responder
	service auth.AuthUseCase
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(service auth.AuthUseCase, locale i18n.Context) *AuthHandler {
	return &AuthHandler{responder: responder{locale: locale}, service: service}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, domain.ErrInvalidRequest)
		return
	}
	session, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
