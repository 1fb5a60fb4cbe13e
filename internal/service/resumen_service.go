package service

// resumen_service.go — period summaries over an arbitrary date range:
// channel matrix, direct-sale deduction breakdown, and staff payouts.
// Commissions are read from the frozen per-sale values, never recomputed,
// so the report is stable under later rate or settings changes.

import (
	"context"
	"fmt"
	"time"

	"viewspos/internal/dto"
	"viewspos/internal/model"
	"viewspos/internal/money"
	"viewspos/internal/repository"

	"github.com/shopspring/decimal"
)

var tasaRenta = decimal.NewFromFloat(0.10)

type ResumenService interface {
	// Resumir aggregates sales with Fecha in [desde 00:00:00, hasta 23:59:59].
	Resumir(ctx context.Context, desde, hasta string) (*dto.ResumenResponse, error)
}

type resumenService struct {
	ventas repository.VentaRepository
}

func NewResumenService(ventas repository.VentaRepository) ResumenService {
	return &resumenService{ventas: ventas}
}

var canalesResumen = []string{
	model.CanalReservaDirecta,
	model.CanalExpedia,
	model.CanalBooking,
	model.CanalWebsite,
}

func (s *resumenService) Resumir(ctx context.Context, desde, hasta string) (*dto.ResumenResponse, error) {
	d, err := time.Parse("2006-01-02", desde)
	if err != nil {
		return nil, fmt.Errorf("desde: %w", err)
	}
	h, err := time.Parse("2006-01-02", hasta)
	if err != nil {
		return nil, fmt.Errorf("hasta: %w", err)
	}
	ventas, err := s.ventas.ListByRango(ctx, d, h.Add(24*time.Hour-time.Second))
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumenResponse{Desde: desde, Hasta: hasta}
	resp.Canales, resp.TotalCanales = matrizCanales(ventas)
	resp.Deducciones = deduccionesVentaDirecta(ventas)
	resp.Pagos, resp.TotalPagos = pagosRecepcionistas(ventas)
	return resp, nil
}

// ── Matriz por canal ─────────────────────────────────────────────────────────

func matrizCanales(ventas []model.Venta) ([]dto.FilaCanal, dto.FilaCanal) {
	porCanal := make(map[string]*dto.FilaCanal, len(canalesResumen))
	for _, c := range canalesResumen {
		porCanal[c] = &dto.FilaCanal{Canal: c}
	}

	for _, v := range ventas {
		fila, ok := porCanal[v.Canal]
		if !ok {
			continue
		}
		switch model.BucketResumen(v.MetodoPago) {
		case model.BucketEfectivo:
			fila.Efectivo = fila.Efectivo.Add(v.Monto)
		case model.BucketTarjeta:
			fila.Tarjeta = fila.Tarjeta.Add(v.Monto)
		case model.BucketBitcoin:
			fila.Bitcoin = fila.Bitcoin.Add(v.Monto)
		default:
			fila.Transfer = fila.Transfer.Add(v.Monto)
		}
		fila.Total = fila.Total.Add(v.Monto)
	}

	filas := make([]dto.FilaCanal, 0, len(canalesResumen))
	total := dto.FilaCanal{Canal: "Total"}
	for _, c := range canalesResumen {
		fila := *porCanal[c]
		filas = append(filas, fila)
		total.Efectivo = total.Efectivo.Add(fila.Efectivo)
		total.Tarjeta = total.Tarjeta.Add(fila.Tarjeta)
		total.Bitcoin = total.Bitcoin.Add(fila.Bitcoin)
		total.Transfer = total.Transfer.Add(fila.Transfer)
		total.Total = total.Total.Add(fila.Total)
	}
	return filas, total
}

// ── Deducciones de venta directa ─────────────────────────────────────────────

func deduccionesVentaDirecta(ventas []model.Venta) dto.DeduccionesVentaDirecta {
	var d dto.DeduccionesVentaDirecta
	for _, v := range ventas {
		if v.Canal != model.CanalReservaDirecta {
			continue
		}

		switch model.BucketResumen(v.MetodoPago) {
		case model.BucketEfectivo:
			d.BrutoEfectivo = d.BrutoEfectivo.Add(v.Monto)
		case model.BucketTarjeta:
			d.BrutoTarjeta = d.BrutoTarjeta.Add(v.Monto)
		case model.BucketBitcoin:
			d.BrutoBitcoin = d.BrutoBitcoin.Add(v.Monto)
		default:
			d.BrutoTransfer = d.BrutoTransfer.Add(v.Monto)
		}
		d.BrutoTotal = d.BrutoTotal.Add(v.Monto)

		if v.Tipo == "Hotel" {
			d.ImpuestoHotel = d.ImpuestoHotel.Add(v.Monto.Mul(tasaImpuestoHotel))
		}
		if model.TieneComisionBancaria(v.MetodoPago) {
			d.ComisionBancaria = d.ComisionBancaria.Add(v.Monto.Mul(tasaComisionBancaria))
		}
		d.BaseComisionable = d.BaseComisionable.Add(BaseComisionable(&v))
		d.ComisionPagada = d.ComisionPagada.Add(v.Comision)
	}

	d.ImpuestoHotel = money.Round2(d.ImpuestoHotel)
	d.ComisionBancaria = money.Round2(d.ComisionBancaria)
	d.BaseComisionable = money.Round2(d.BaseComisionable)
	return d
}

// ── Pagos por recepcionista ──────────────────────────────────────────────────

func pagosRecepcionistas(ventas []model.Venta) ([]dto.PagoRecepcionista, dto.PagoRecepcionista) {
	roster := []string{model.RecepcionistaDiego, model.RecepcionistaHelen}

	comisiones := make(map[string]decimal.Decimal, len(roster))
	for _, v := range ventas {
		comisiones[v.Recepcionista] = comisiones[v.Recepcionista].Add(v.Comision)
	}

	pagos := make([]dto.PagoRecepcionista, 0, len(roster))
	total := dto.PagoRecepcionista{Recepcionista: "Total"}
	for _, r := range roster {
		comision := comisiones[r]
		renta := money.Round2(comision.Mul(tasaRenta))
		pago := dto.PagoRecepcionista{
			Recepcionista: r,
			Comision:      comision,
			Renta:         renta,
			Total:         comision.Sub(renta),
		}
		pagos = append(pagos, pago)
		total.Comision = total.Comision.Add(pago.Comision)
		total.Renta = total.Renta.Add(pago.Renta)
		total.Total = total.Total.Add(pago.Total)
	}
	return pagos, total
}
