package dto

import "github.com/shopspring/decimal"

// FilaCanal is one row of the channel matrix: a channel's revenue split by
// settlement bucket.
type FilaCanal struct {
	Canal    string          `json:"canal"`
	Efectivo decimal.Decimal `json:"efectivo"`
	Tarjeta  decimal.Decimal `json:"tc"`
	Bitcoin  decimal.Decimal `json:"bitcoin"`
	Transfer decimal.Decimal `json:"transfer"`
	Total    decimal.Decimal `json:"total"`
}

// DeduccionesVentaDirecta breaks down the commission arithmetic over the
// direct-reservation channel: gross per bucket, the two flat deductions, the
// positive commissionable base, and the stored (frozen) commissions.
type DeduccionesVentaDirecta struct {
	BrutoEfectivo decimal.Decimal `json:"bruto_efectivo"`
	BrutoTarjeta  decimal.Decimal `json:"bruto_tc"`
	BrutoBitcoin  decimal.Decimal `json:"bruto_bitcoin"`
	BrutoTransfer decimal.Decimal `json:"bruto_transfer"`
	BrutoTotal    decimal.Decimal `json:"bruto_total"`

	ImpuestoHotel    decimal.Decimal `json:"impuesto_hotel"`    // 18%, solo tipo Hotel
	ComisionBancaria decimal.Decimal `json:"comision_bancaria"` // 4.5%, tarjetas y link
	BaseComisionable decimal.Decimal `json:"base_comisionable"`
	ComisionPagada   decimal.Decimal `json:"comision_pagada"`
}

// PagoRecepcionista is one staff payout line: frozen commissions summed over
// the range, minus the flat 10% renta.
type PagoRecepcionista struct {
	Recepcionista string          `json:"recepcionista"`
	Comision      decimal.Decimal `json:"comision"`
	Renta         decimal.Decimal `json:"renta"`
	Total         decimal.Decimal `json:"total"`
}

type ResumenResponse struct {
	Desde string `json:"desde"`
	Hasta string `json:"hasta"`

	Canales     []FilaCanal `json:"canales"`
	TotalCanales FilaCanal  `json:"total_canales"`

	Deducciones DeduccionesVentaDirecta `json:"deducciones_venta_directa"`

	Pagos      []PagoRecepcionista `json:"pagos"`
	TotalPagos PagoRecepcionista   `json:"total_pagos"`
}
