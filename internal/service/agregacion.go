package service

// agregacion.go — pure grouping of one day's sales into the figures the
// corte and the dashboard consume. Deterministic: same input, same output,
// no global state.

import (
	"sort"

	"viewspos/internal/dto"
	"viewspos/internal/model"

	"github.com/shopspring/decimal"
)

// AnalizarVentas splits a day's revenue into the settlement categories the
// reconciliation needs: total, per card network, card aggregate, and the
// deposit-style portion that never passes through the drawer.
func AnalizarVentas(ventas []model.Venta) dto.AnalisisVentas {
	var a dto.AnalisisVentas
	for _, v := range ventas {
		a.Total = a.Total.Add(v.Monto)
		switch v.MetodoPago {
		case model.MetodoBAC:
			a.BAC = a.BAC.Add(v.Monto)
		case model.MetodoPromerica:
			a.Promerica = a.Promerica.Add(v.Monto)
		}
		if model.EsDeposito(v.MetodoPago) {
			a.Deposito = a.Deposito.Add(v.Monto)
		}
	}
	a.Tarjeta = a.BAC.Add(a.Promerica)
	return a
}

// DesglosarVentas produces the (tipo, metodo) breakdown restricted to
// positive cells. Row order: configured sale types first in configured
// order, then historical types missing from configuration, alphabetically.
// Within a type, methods follow the configured order, then extras
// alphabetically.
func DesglosarVentas(ventas []model.Venta, tipos, metodos []string) []dto.DesgloseFila {
	porCelda := make(map[string]map[string]decimal.Decimal)
	for _, v := range ventas {
		if porCelda[v.Tipo] == nil {
			porCelda[v.Tipo] = make(map[string]decimal.Decimal)
		}
		porCelda[v.Tipo][v.MetodoPago] = porCelda[v.Tipo][v.MetodoPago].Add(v.Monto)
	}

	filas := make([]dto.DesgloseFila, 0, len(ventas))
	for _, tipo := range ordenar(claves(porCelda), tipos) {
		celdas := porCelda[tipo]
		for _, metodo := range ordenar(claves(celdas), metodos) {
			monto := celdas[metodo]
			if monto.IsPositive() {
				filas = append(filas, dto.DesgloseFila{Tipo: tipo, Metodo: metodo, Monto: monto})
			}
		}
	}
	return filas
}

// TotalGastos sums expense totals for the day.
func TotalGastos(gastos []model.Gasto) decimal.Decimal {
	var total decimal.Decimal
	for _, g := range gastos {
		total = total.Add(g.Total)
	}
	return total
}

func claves[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// ordenar arranges presentes as: configured values first (configured order),
// then the rest alphabetically.
func ordenar(presentes, configurados []string) []string {
	set := make(map[string]bool, len(presentes))
	for _, p := range presentes {
		set[p] = true
	}

	out := make([]string, 0, len(presentes))
	for _, c := range configurados {
		if set[c] {
			out = append(out, c)
			delete(set, c)
		}
	}
	extras := make([]string, 0, len(set))
	for k := range set {
		extras = append(extras, k)
	}
	sort.Strings(extras)
	return append(out, extras...)
}
