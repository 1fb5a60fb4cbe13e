package handler

import (
	"net/http"

	"viewspos/internal/apierror"
	"viewspos/internal/service"

	"github.com/gin-gonic/gin"
)

type ResumenHandler struct{ svc service.ResumenService }

func NewResumenHandler(svc service.ResumenService) *ResumenHandler {
	return &ResumenHandler{svc: svc}
}

// Obtener builds the period summary: GET /v1/resumen?desde=...&hasta=...
func (h *ResumenHandler) Obtener(c *gin.Context) {
	desde, hasta := c.Query("desde"), c.Query("hasta")
	if desde == "" || hasta == "" {
		c.JSON(http.StatusBadRequest, apierror.New("desde y hasta son requeridos (YYYY-MM-DD)"))
		return
	}
	resp, err := h.svc.Resumir(c.Request.Context(), desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
