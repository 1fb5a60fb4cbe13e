package service

// comision.go — commission arithmetic for front-desk staff.
// The result is computed once at sale create/update time and frozen on the
// Venta record; nothing ever recomputes it from current settings.

import (
	"viewspos/internal/model"
	"viewspos/internal/money"

	"github.com/shopspring/decimal"
)

// Tasas y deducciones fijas del negocio.
var (
	tasaImpuestoHotel    = decimal.NewFromFloat(0.18)  // impuesto turistico, solo tipo Hotel
	tasaComisionBancaria = decimal.NewFromFloat(0.045) // tarjetas y Link de Pago
	tasaHelen            = decimal.NewFromFloat(0.01)
	tasaDiego            = decimal.NewFromFloat(0.02)
)

// TipoRestaurante never pays commission regardless of channel.
const TipoRestaurante = "Restaurante"

// EsComisionable reports whether a sale can carry commission at all:
// anything but restaurant revenue, sold through the direct channel.
func EsComisionable(tipo, canal string) bool {
	return tipo != TipoRestaurante && canal == model.CanalReservaDirecta
}

// CalcularComision returns (recepcionista efectivo, comision).
// Non-commissionable sales force the staff assignment to Ninguno and pay 0.
//
// Both deductions are sized off the ORIGINAL amount and subtracted from the
// same running base. They do not compound: a $1000 hotel sale on BAC yields
// base = 1000 - 180 - 45 = 775, not 1000*0.82*0.955.
func CalcularComision(tipo, canal, metodoPago, recepcionista string, monto decimal.Decimal) (string, decimal.Decimal) {
	if !EsComisionable(tipo, canal) {
		return model.RecepcionistaNinguno, decimal.Zero
	}
	if recepcionista == "" {
		recepcionista = model.RecepcionistaNinguno
	}

	base := monto
	if tipo == "Hotel" {
		base = base.Sub(monto.Mul(tasaImpuestoHotel))
	}
	if model.TieneComisionBancaria(metodoPago) {
		base = base.Sub(monto.Mul(tasaComisionBancaria))
	}

	var tasa decimal.Decimal
	switch recepcionista {
	case model.RecepcionistaHelen:
		tasa = tasaHelen
	case model.RecepcionistaDiego:
		tasa = tasaDiego
	default:
		return recepcionista, decimal.Zero
	}

	if base.IsNegative() || base.IsZero() {
		return recepcionista, decimal.Zero
	}
	return recepcionista, money.Round2(base.Mul(tasa))
}

// BaseComisionable returns the per-sale base after deductions, clamped to
// zero. The resumen engine accumulates this over every direct-channel sale,
// commission-bearing or not: a restaurant sale has no deductions, so its
// full amount lands in the base even though it pays no commission.
func BaseComisionable(v *model.Venta) decimal.Decimal {
	if v.Canal != model.CanalReservaDirecta {
		return decimal.Zero
	}
	base := v.Monto
	if v.Tipo == "Hotel" {
		base = base.Sub(v.Monto.Mul(tasaImpuestoHotel))
	}
	if model.TieneComisionBancaria(v.MetodoPago) {
		base = base.Sub(v.Monto.Mul(tasaComisionBancaria))
	}
	if base.IsNegative() {
		return decimal.Zero
	}
	return base
}
