package dto

// ConfiguracionRequest replaces the two ordered lists wholesale. Order is
// meaningful: it drives row ordering in the corte breakdown.
type ConfiguracionRequest struct {
	TiposVenta  []string `json:"tipos_venta"  validate:"required,min=1,dive,min=1"`
	MetodosPago []string `json:"metodos_pago" validate:"required,min=1,dive,min=1"`
}

type ConfiguracionResponse struct {
	TiposVenta  []string `json:"tipos_venta"`
	MetodosPago []string `json:"metodos_pago"`
}
