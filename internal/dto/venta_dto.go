package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// VentaRequest is used for both create and full-replace update.
// Fecha is only honored on create; edits keep the original timestamp.
type VentaRequest struct {
	Fecha         *string         `json:"fecha"          validate:"omitempty"`
	Comanda       string          `json:"comanda"        validate:"required,min=1"`
	Monto         decimal.Decimal `json:"monto"          validate:"required,gt=0"`
	Canal         string          `json:"canal"          validate:"required,oneof='Reserva Directa' Expedia Booking Website"`
	Tipo          string          `json:"tipo"           validate:"required"`
	MetodoPago    string          `json:"metodo_pago"    validate:"required"`
	Voucher       *string         `json:"voucher"`
	Notas         *string         `json:"notas"`
	Propina       *decimal.Decimal `json:"propina"       validate:"omitempty,min=0"`
	Recepcionista string          `json:"recepcionista"  validate:"omitempty,oneof=Helen Diego Ninguno"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VentaResponse struct {
	ID            string          `json:"id"`
	Fecha         string          `json:"fecha"`
	Comanda       string          `json:"comanda"`
	Monto         decimal.Decimal `json:"monto"`
	Canal         string          `json:"canal"`
	Tipo          string          `json:"tipo"`
	MetodoPago    string          `json:"metodo_pago"`
	Voucher       *string         `json:"voucher,omitempty"`
	Notas         *string         `json:"notas,omitempty"`
	Propina       *decimal.Decimal `json:"propina,omitempty"`
	Recepcionista string          `json:"recepcionista"`
	Comision      decimal.Decimal `json:"comision"`
}

// PanelResponse carries the daily dashboard figures.
type PanelResponse struct {
	Fecha          string          `json:"fecha"`
	Total          decimal.Decimal `json:"total"`
	Transacciones  int             `json:"transacciones"`
	TicketPromedio decimal.Decimal `json:"ticket_promedio"`
	Efectivo       decimal.Decimal `json:"efectivo"`
	Digital        decimal.Decimal `json:"digital"`
	Gastos         decimal.Decimal `json:"gastos"`
	DiaAbierto     bool            `json:"dia_abierto"`
}
