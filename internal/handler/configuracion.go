package handler

import (
	"net/http"

	"viewspos/internal/dto"
	"viewspos/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfiguracionHandler struct{ svc service.ConfiguracionService }

func NewConfiguracionHandler(svc service.ConfiguracionService) *ConfiguracionHandler {
	return &ConfiguracionHandler{svc: svc}
}

func (h *ConfiguracionHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConfiguracionHandler) Actualizar(c *gin.Context) {
	var req dto.ConfiguracionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
