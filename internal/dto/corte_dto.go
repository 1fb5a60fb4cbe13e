package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ConteoRequest carries the physical count and the operator-entered card
// batch totals. Quantities and amounts arrive as strings exactly as typed:
// the service parses them with the strict money rules (reject, never coerce).
type ConteoRequest struct {
	Billetes map[string]string `json:"billetes"` // denominacion -> cantidad
	Monedas  map[string]string `json:"monedas"`
	Cheques  string            `json:"cheques"`
	Otros    string            `json:"otros"`

	// Lotes de tarjeta por red (informativo).
	LoteBAC       string `json:"lote_bac"`
	LotePromerica string `json:"lote_promerica"`

	// Remesa: opcionalmente incluir el sobrante en el monto remesado.
	IncluirSobrante bool `json:"incluir_sobrante"`
}

// CerrarDiaRequest closes a date. FondoSiguiente is only honored when a
// remittance was processed this session; otherwise the counted total carries
// forward (the un-remitted drawer keeps its full physical count).
type CerrarDiaRequest struct {
	// Confirmado is checked by the service, not a validator tag: a missing
	// confirmation is a domain refusal, not a malformed request.
	Confirmado      bool   `json:"confirmado"`
	RemesaProcesada bool   `json:"remesa_procesada"`
	FondoSiguiente  string `json:"fondo_siguiente"`
	ConteoTotal     string `json:"conteo_total" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AnalisisVentas struct {
	Total     decimal.Decimal `json:"total"`
	BAC       decimal.Decimal `json:"bac"`
	Promerica decimal.Decimal `json:"promerica"`
	Tarjeta   decimal.Decimal `json:"tarjeta"`
	Deposito  decimal.Decimal `json:"deposito"`
}

// DesgloseFila is one (tipo, metodo) cell of the two-level breakdown.
type DesgloseFila struct {
	Tipo   string          `json:"tipo"`
	Metodo string          `json:"metodo"`
	Monto  decimal.Decimal `json:"monto"`
}

type LoteTarjeta struct {
	Red        string          `json:"red"`
	Lote       decimal.Decimal `json:"lote"`
	Ventas     decimal.Decimal `json:"ventas"`
	Diferencia decimal.Decimal `json:"diferencia"`
}

// CorteResponse is the full reconciliation view for one date.
type CorteResponse struct {
	Fecha        string          `json:"fecha"`
	Abierto      bool            `json:"abierto"`
	FondoInicial decimal.Decimal `json:"fondo_inicial"`

	Ventas   AnalisisVentas  `json:"ventas"`
	Gastos   decimal.Decimal `json:"gastos"`
	Desglose []DesgloseFila  `json:"desglose"`

	EfectivoBruto decimal.Decimal `json:"efectivo_bruto"`
	EfectivoNeto  decimal.Decimal `json:"efectivo_neto"`
	Teorico       decimal.Decimal `json:"teorico"`
}

// ConteoResponse is the stateless result of running the count against the
// theoretical balance. Nothing here is persisted.
type ConteoResponse struct {
	Fecha       string          `json:"fecha"`
	ConteoTotal decimal.Decimal `json:"conteo_total"`
	Teorico     decimal.Decimal `json:"teorico"`
	Diferencia  decimal.Decimal `json:"diferencia"`
	Sobrante    decimal.Decimal `json:"sobrante"`
	Faltante    decimal.Decimal `json:"faltante"`

	BaseRemesa      decimal.Decimal `json:"base_remesa"`
	MontoRemesa     decimal.Decimal `json:"monto_remesa"`
	IncluyeSobrante bool            `json:"incluye_sobrante"`

	Lotes []LoteTarjeta `json:"lotes"`
}

// ReporteCierre is the payload behind the end-of-day report: the PDF
// generator renders it and the mail worker sends it.
type ReporteCierre struct {
	Fecha        string          `json:"fecha"`
	CerradoPor   string          `json:"cerrado_por"`
	FondoInicial decimal.Decimal `json:"fondo_inicial"`
	FondoFinal   decimal.Decimal `json:"fondo_final"`
	Ventas       AnalisisVentas  `json:"ventas"`
	Gastos       decimal.Decimal `json:"gastos"`
	Teorico      decimal.Decimal `json:"teorico"`
}

type EstadoDiaResponse struct {
	Fecha        string           `json:"fecha"`
	Abierto      bool             `json:"abierto"`
	FondoInicial decimal.Decimal  `json:"fondo_inicial"`
	FondoFinal   *decimal.Decimal `json:"fondo_final,omitempty"`
	CerradoEn    *string          `json:"cerrado_en,omitempty"`
	CerradoPor   *string          `json:"cerrado_por,omitempty"`
}
