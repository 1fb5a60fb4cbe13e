package handler

import (
	"net/http"
	"time"

	"viewspos/internal/apierror"
	"viewspos/internal/dto"
	"viewspos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GastosHandler struct{ svc service.GastoService }

func NewGastosHandler(svc service.GastoService) *GastosHandler {
	return &GastosHandler{svc: svc}
}

func (h *GastosHandler) Crear(c *gin.Context) {
	var req dto.GastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GastosHandler) Listar(c *gin.Context) {
	fecha := c.Query("fecha")
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}
	resp, err := h.svc.ListarPorFecha(c.Request.Context(), fecha)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GastosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GastosHandler) Proveedores(c *gin.Context) {
	resp, err := h.svc.ListarProveedores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
