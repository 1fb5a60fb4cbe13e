package handler

import (
	"net/http"

	"viewspos/internal/dto"
	"viewspos/internal/middleware"
	"viewspos/internal/service"

	"github.com/gin-gonic/gin"
)

type CorteHandler struct{ svc service.CorteService }

func NewCorteHandler(svc service.CorteService) *CorteHandler {
	return &CorteHandler{svc: svc}
}

// Obtener returns the full reconciliation view for a date.
func (h *CorteHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("fecha"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Conteo computes the physical count against the theoretical balance.
// Stateless: the response is for the operator's eyes, nothing persists.
func (h *CorteHandler) Conteo(c *gin.Context) {
	var req dto.ConteoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Conteo(c.Request.Context(), c.Param("fecha"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cerrar closes the day and seeds the next one.
func (h *CorteHandler) Cerrar(c *gin.Context) {
	var req dto.CerrarDiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Cerrar(c.Request.Context(), c.Param("fecha"), req, claims.Nombre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reabrir reopens a closed day. Admin only; the role travels in the JWT.
func (h *CorteHandler) Reabrir(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Reabrir(c.Request.Context(), c.Param("fecha"), claims.Rol)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EstadoDia resolves a date's open/closed state (implicitly open when the
// record is absent).
func (h *CorteHandler) EstadoDia(c *gin.Context) {
	resp, err := h.svc.EstadoDia(c.Request.Context(), c.Param("fecha"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
