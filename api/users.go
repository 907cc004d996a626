package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reinvvay/airport-api/internal/service/users"
)

type UserHandler struct {
	service users.UserUseCase
}

func NewUserHandler(service users.UserUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/token", h.token)
	router.GET("/me", h.me)
}

func (h *UserHandler) register(c *gin.Context) {
	var in users.RegisterInput
	if !bindJSON(c, &in) {
		return
	}
	user, err := h.service.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) token(c *gin.Context) {
	var in users.LoginInput
	if !bindJSON(c, &in) {
		return
	}
	tok, err := h.service.Login(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tok)
}

func (h *UserHandler) me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
