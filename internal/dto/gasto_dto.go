package dto

import "github.com/shopspring/decimal"

// GastoRequest creates an expense document. IVA and Total are derived
// server-side from Subtotal and TipoDocumento — the client never sends them.
type GastoRequest struct {
	Fecha           string          `json:"fecha"            validate:"required,datetime=2006-01-02"`
	Proveedor       string          `json:"proveedor"        validate:"required,min=1"`
	Descripcion     string          `json:"descripcion"      validate:"required,min=1"`
	Subtotal        decimal.Decimal `json:"subtotal"         validate:"required,gt=0"`
	MetodoPago      string          `json:"metodo_pago"      validate:"required"`
	TipoDocumento   string          `json:"tipo_documento"   validate:"required,oneof=RECIBO CCF CREDITO_FISCAL FACTURA"`
	NumeroDocumento string          `json:"numero_documento" validate:"required"`

	RazonSocial *string `json:"razon_social"`
	DUINIT      *string `json:"dui_nit"`
	Telefono    *string `json:"telefono"`
	Direccion   *string `json:"direccion"`
}

type GastoResponse struct {
	ID              string          `json:"id"`
	Fecha           string          `json:"fecha"`
	Proveedor       string          `json:"proveedor"`
	Descripcion     string          `json:"descripcion"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	IVA             decimal.Decimal `json:"iva"`
	Total           decimal.Decimal `json:"total"`
	MetodoPago      string          `json:"metodo_pago"`
	TipoDocumento   string          `json:"tipo_documento"`
	NumeroDocumento string          `json:"numero_documento"`
	RazonSocial     *string         `json:"razon_social,omitempty"`
	DUINIT          *string         `json:"dui_nit,omitempty"`
	Telefono        *string         `json:"telefono,omitempty"`
	Direccion       *string         `json:"direccion,omitempty"`
}
