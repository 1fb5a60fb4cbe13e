package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"viewspos/internal/dto"
	"viewspos/internal/model"
	"viewspos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	Crear(ctx context.Context, req dto.VentaRequest) (*dto.VentaResponse, error)
	// Actualizar replaces the whole document; id and original timestamp
	// survive the edit.
	Actualizar(ctx context.Context, id uuid.UUID, req dto.VentaRequest) (*dto.VentaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	ListarPorFecha(ctx context.Context, fecha string) ([]dto.VentaResponse, error)
	Panel(ctx context.Context, fecha string) (*dto.PanelResponse, error)
	// ExportarCSV renders the current month's sales.
	ExportarCSV(ctx context.Context, ahora time.Time) (string, error)
}

type ventaService struct {
	repo   repository.VentaRepository
	gastos repository.GastoRepository
	corte  CorteService
	config ConfiguracionService
}

func NewVentaService(
	repo repository.VentaRepository,
	gastos repository.GastoRepository,
	corte CorteService,
	config ConfiguracionService,
) VentaService {
	return &ventaService{repo: repo, gastos: gastos, corte: corte, config: config}
}

// ── Crear / Actualizar / Eliminar ────────────────────────────────────────────

func (s *ventaService) Crear(ctx context.Context, req dto.VentaRequest) (*dto.VentaResponse, error) {
	fecha := time.Now()
	if req.Fecha != nil && *req.Fecha != "" {
		parsed, err := time.Parse(time.RFC3339, *req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha invalida: %w", err)
		}
		fecha = parsed
	}

	if err := s.validar(ctx, req); err != nil {
		return nil, err
	}
	if err := s.corte.VerificarDiaAbierto(ctx, fecha.Format("2006-01-02")); err != nil {
		return nil, err
	}

	recepcionista, comision := CalcularComision(req.Tipo, req.Canal, req.MetodoPago, req.Recepcionista, req.Monto)

	venta := &model.Venta{
		Fecha:         fecha,
		Comanda:       req.Comanda,
		Monto:         req.Monto,
		Canal:         req.Canal,
		Tipo:          req.Tipo,
		MetodoPago:    req.MetodoPago,
		Voucher:       req.Voucher,
		Notas:         req.Notas,
		Propina:       req.Propina,
		Recepcionista: recepcionista,
		Comision:      comision,
	}
	if err := s.repo.Create(ctx, venta); err != nil {
		return nil, err
	}
	return ventaResponse(venta), nil
}

func (s *ventaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.VentaRequest) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	if err := s.corte.VerificarDiaAbierto(ctx, venta.FechaDia()); err != nil {
		return nil, err
	}
	if err := s.validar(ctx, req); err != nil {
		return nil, err
	}

	// La comision se recalcula en la edicion y queda congelada de nuevo.
	recepcionista, comision := CalcularComision(req.Tipo, req.Canal, req.MetodoPago, req.Recepcionista, req.Monto)

	venta.Comanda = req.Comanda
	venta.Monto = req.Monto
	venta.Canal = req.Canal
	venta.Tipo = req.Tipo
	venta.MetodoPago = req.MetodoPago
	venta.Voucher = req.Voucher
	venta.Notas = req.Notas
	venta.Propina = req.Propina
	venta.Recepcionista = recepcionista
	venta.Comision = comision

	if err := s.repo.Update(ctx, venta); err != nil {
		return nil, err
	}
	return ventaResponse(venta), nil
}

func (s *ventaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	venta, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoEncontrado
	}
	if err != nil {
		return err
	}
	if err := s.corte.VerificarDiaAbierto(ctx, venta.FechaDia()); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ── Consultas ────────────────────────────────────────────────────────────────

func (s *ventaService) ListarPorFecha(ctx context.Context, fecha string) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, *ventaResponse(&ventas[i]))
	}
	return out, nil
}

func (s *ventaService) Panel(ctx context.Context, fecha string) (*dto.PanelResponse, error) {
	ventas, err := s.repo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	gastos, err := s.gastos.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	estado, err := s.corte.EstadoDia(ctx, fecha)
	if err != nil {
		return nil, err
	}

	analisis := AnalizarVentas(ventas)
	efectivo := analisis.Total.Sub(analisis.Tarjeta).Sub(analisis.Deposito)

	promedio := decimal.Zero
	if len(ventas) > 0 {
		promedio = analisis.Total.Div(decimal.NewFromInt(int64(len(ventas)))).Round(2)
	}

	return &dto.PanelResponse{
		Fecha:          fecha,
		Total:          analisis.Total,
		Transacciones:  len(ventas),
		TicketPromedio: promedio,
		Efectivo:       efectivo,
		Digital:        analisis.Tarjeta.Add(analisis.Deposito),
		Gastos:         TotalGastos(gastos),
		DiaAbierto:     estado.Abierto,
	}, nil
}

// ExportarCSV renders one row per sale of the current month.
// Known limitation carried over from the legacy export: values are joined
// with bare commas and never quoted, so an embedded comma in comanda or
// tipo shifts columns in the output.
func (s *ventaService) ExportarCSV(ctx context.Context, ahora time.Time) (string, error) {
	desde := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())
	hasta := desde.AddDate(0, 1, 0).Add(-time.Second)

	ventas, err := s.repo.ListByRango(ctx, desde, hasta)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Fecha,Comanda,Tipo,Monto,Metodo,Canal\n")
	for _, v := range ventas {
		b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s\n",
			v.Fecha.Format("2006-01-02"), v.Comanda, v.Tipo,
			v.Monto.StringFixed(2), v.MetodoPago, v.Canal))
	}
	return b.String(), nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func (s *ventaService) validar(ctx context.Context, req dto.VentaRequest) error {
	if model.RequiereVoucher(req.MetodoPago) && (req.Voucher == nil || strings.TrimSpace(*req.Voucher) == "") {
		return fmt.Errorf("%w: el metodo %q requiere numero de voucher", ErrDatosInvalidos, req.MetodoPago)
	}

	cfg, err := s.config.Obtener(ctx)
	if err != nil {
		return err
	}
	if !contiene(cfg.TiposVenta, req.Tipo) {
		return fmt.Errorf("%w: tipo de venta no configurado", ErrDatosInvalidos)
	}
	if !contiene(cfg.MetodosPago, req.MetodoPago) {
		return fmt.Errorf("%w: metodo de pago no configurado", ErrDatosInvalidos)
	}
	return nil
}

func contiene(lista []string, valor string) bool {
	for _, v := range lista {
		if v == valor {
			return true
		}
	}
	return false
}

func ventaResponse(v *model.Venta) *dto.VentaResponse {
	return &dto.VentaResponse{
		ID:            v.ID.String(),
		Fecha:         v.Fecha.Format(time.RFC3339),
		Comanda:       v.Comanda,
		Monto:         v.Monto,
		Canal:         v.Canal,
		Tipo:          v.Tipo,
		MetodoPago:    v.MetodoPago,
		Voucher:       v.Voucher,
		Notas:         v.Notas,
		Propina:       v.Propina,
		Recepcionista: v.Recepcionista,
		Comision:      v.Comision,
	}
}
