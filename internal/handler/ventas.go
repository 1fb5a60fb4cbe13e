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

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler {
	return &VentasHandler{svc: svc}
}

func (h *VentasHandler) Crear(c *gin.Context) {
	var req dto.VentaRequest
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

// Listar returns the sales of one date: GET /v1/ventas?fecha=2026-08-28.
// Defaults to today.
func (h *VentasHandler) Listar(c *gin.Context) {
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

func (h *VentasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return
	}
	var req dto.VentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) Eliminar(c *gin.Context) {
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

// Exportar streams the current month's sales as CSV.
func (h *VentasHandler) Exportar(c *gin.Context) {
	csv, err := h.svc.ExportarCSV(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="ventas.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// Panel returns the daily dashboard figures.
func (h *VentasHandler) Panel(c *gin.Context) {
	resp, err := h.svc.Panel(c.Request.Context(), c.Param("fecha"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
