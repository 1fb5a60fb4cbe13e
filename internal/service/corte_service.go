package service

// corte_service.go — daily cash reconciliation: theoretical balance,
// physical count vs theory, remittance figures, and the day open/close
// state machine with fund carry-forward.

import (
	"context"
	"fmt"
	"time"

	"viewspos/internal/dto"
	"viewspos/internal/model"
	"viewspos/internal/money"
	"viewspos/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Denominaciones fisicas del conteo, en unidades de la moneda local.
var (
	denominacionesBilletes = []string{"100", "50", "20", "10", "5", "1"}
	denominacionesMonedas  = []string{"0.25", "0.10", "0.05", "0.01"}
)

// CierreNotifier publishes the close report asynchronously (PDF + email).
// Failures are logged, never surfaced: reporting must not block a close.
type CierreNotifier interface {
	NotificarCierre(ctx context.Context, rep dto.ReporteCierre)
}

type CorteService interface {
	Obtener(ctx context.Context, fecha string) (*dto.CorteResponse, error)
	// Conteo runs the physical count against the theoretical balance.
	// Stateless: nothing is persisted, remittance included, and a closed
	// day can still be counted read-only.
	Conteo(ctx context.Context, fecha string, req dto.ConteoRequest) (*dto.ConteoResponse, error)
	Cerrar(ctx context.Context, fecha string, req dto.CerrarDiaRequest, actor string) (*dto.EstadoDiaResponse, error)
	Reabrir(ctx context.Context, fecha, actorRol string) (*dto.EstadoDiaResponse, error)
	EstadoDia(ctx context.Context, fecha string) (*dto.EstadoDiaResponse, error)
	// VerificarDiaAbierto is the guard every mutating venta/gasto operation
	// calls before writing.
	VerificarDiaAbierto(ctx context.Context, fecha string) error
}

type corteService struct {
	ventas   repository.VentaRepository
	gastos   repository.GastoRepository
	dias     repository.DiaRepository
	config   ConfiguracionService
	notifier CierreNotifier
}

func NewCorteService(
	ventas repository.VentaRepository,
	gastos repository.GastoRepository,
	dias repository.DiaRepository,
	config ConfiguracionService,
	notifier CierreNotifier,
) CorteService {
	return &corteService{ventas: ventas, gastos: gastos, dias: dias, config: config, notifier: notifier}
}

// ── Lectura ──────────────────────────────────────────────────────────────────

func (s *corteService) Obtener(ctx context.Context, fecha string) (*dto.CorteResponse, error) {
	estado, ventas, gastos, err := s.snapshot(ctx, fecha)
	if err != nil {
		return nil, err
	}

	analisis := AnalizarVentas(ventas)
	totalGastos := TotalGastos(gastos)
	bruto, neto, teorico := balanceTeorico(estado.FondoInicial, analisis, totalGastos)

	cfg, err := s.config.Obtener(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CorteResponse{
		Fecha:         fecha,
		Abierto:       estado.Abierto,
		FondoInicial:  estado.FondoInicial,
		Ventas:        analisis,
		Gastos:        totalGastos,
		Desglose:      DesglosarVentas(ventas, cfg.TiposVenta, cfg.MetodosPago),
		EfectivoBruto: bruto,
		EfectivoNeto:  neto,
		Teorico:       teorico,
	}, nil
}

func (s *corteService) EstadoDia(ctx context.Context, fecha string) (*dto.EstadoDiaResponse, error) {
	existente, err := s.dias.FindByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return estadoDiaResponse(model.ResolverEstadoDia(fecha, existente)), nil
}

func (s *corteService) VerificarDiaAbierto(ctx context.Context, fecha string) error {
	existente, err := s.dias.FindByFecha(ctx, fecha)
	if err != nil {
		return err
	}
	if !model.ResolverEstadoDia(fecha, existente).Abierto {
		return ErrDiaCerrado
	}
	return nil
}

// ── Conteo ───────────────────────────────────────────────────────────────────

// Conteo is a pure computation over the day's snapshot: nothing is
// persisted, so it is allowed on a closed day too — the reconciliation
// view stays consultable after close, only mutations are guarded.
func (s *corteService) Conteo(ctx context.Context, fecha string, req dto.ConteoRequest) (*dto.ConteoResponse, error) {
	estado, ventas, gastos, err := s.snapshot(ctx, fecha)
	if err != nil {
		return nil, err
	}

	conteo, err := totalConteo(req)
	if err != nil {
		return nil, err
	}

	analisis := AnalizarVentas(ventas)
	_, neto, teorico := balanceTeorico(estado.FondoInicial, analisis, TotalGastos(gastos))

	diferencia := conteo.Sub(teorico)
	if money.EsCero(diferencia) {
		diferencia = decimal.Zero
	}
	sobrante, faltante := decimal.Zero, decimal.Zero
	if diferencia.IsPositive() {
		sobrante = diferencia
	} else {
		faltante = diferencia.Neg()
	}

	// Remesa: solo el efectivo neto positivo es remesable; el faltante se
	// reporta pero nunca se remesa.
	baseRemesa := decimal.Zero
	if neto.IsPositive() {
		baseRemesa = neto
	}
	montoRemesa := baseRemesa
	if req.IncluirSobrante {
		montoRemesa = montoRemesa.Add(sobrante)
	}

	lotes, err := lotesTarjeta(req, analisis)
	if err != nil {
		return nil, err
	}

	return &dto.ConteoResponse{
		Fecha:           fecha,
		ConteoTotal:     conteo,
		Teorico:         teorico,
		Diferencia:      diferencia,
		Sobrante:        sobrante,
		Faltante:        faltante,
		BaseRemesa:      baseRemesa,
		MontoRemesa:     montoRemesa,
		IncluyeSobrante: req.IncluirSobrante,
		Lotes:           lotes,
	}, nil
}

// ── Cierre / reapertura ──────────────────────────────────────────────────────

func (s *corteService) Cerrar(ctx context.Context, fecha string, req dto.CerrarDiaRequest, actor string) (*dto.EstadoDiaResponse, error) {
	if !req.Confirmado {
		return nil, ErrNoConfirmado
	}

	existente, err := s.dias.FindByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	estado := model.ResolverEstadoDia(fecha, existente)
	if !estado.Abierto {
		return nil, ErrDiaCerrado
	}

	conteo, err := money.ParseMonto(req.ConteoTotal)
	if err != nil {
		return nil, fmt.Errorf("conteo_total: %w", err)
	}

	// Fondo del dia siguiente: el valor del operador solo cuando hubo
	// remesa; sin remesa el cajon no remesado arrastra su conteo fisico
	// completo.
	var fondo decimal.Decimal
	if req.RemesaProcesada {
		if req.FondoSiguiente == "" {
			fondo = model.FondoInicialDefault
		} else if fondo, err = money.ParseMonto(req.FondoSiguiente); err != nil {
			return nil, fmt.Errorf("fondo_siguiente: %w", err)
		}
	} else {
		fondo = money.Round2(conteo)
	}

	siguiente, err := model.SiguienteFecha(fecha)
	if err != nil {
		return nil, err
	}
	existeSiguiente, err := s.dias.FindByFecha(ctx, siguiente)
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	estado.Abierto = false
	estado.FondoFinal = &fondo
	estado.CerradoEn = &ahora
	estado.CerradoPor = &actor

	// Cerrar el dia y sembrar el siguiente son una sola unidad de trabajo.
	txErr := runTx(ctx, s.dias.DB(), func(tx *gorm.DB) error {
		if err := s.dias.SaveTx(tx, estado); err != nil {
			return err
		}
		if existeSiguiente == nil {
			return s.dias.SaveTx(tx, &model.EstadoDia{
				Fecha:        siguiente,
				Abierto:      true,
				FondoInicial: fondo,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notificarCierre(ctx, fecha, actor, estado, fondo)

	return estadoDiaResponse(estado), nil
}

func (s *corteService) Reabrir(ctx context.Context, fecha, actorRol string) (*dto.EstadoDiaResponse, error) {
	if actorRol != model.RolAdmin {
		return nil, ErrProhibido
	}

	existente, err := s.dias.FindByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	if existente == nil || existente.Abierto {
		return nil, fmt.Errorf("%w: el dia no esta cerrado", ErrDatosInvalidos)
	}

	// Reabrir no toca los fondos: el FondoFinal del cierre queda registrado.
	existente.Abierto = true
	if err := s.dias.Save(ctx, existente); err != nil {
		return nil, err
	}
	return estadoDiaResponse(existente), nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *corteService) snapshot(ctx context.Context, fecha string) (*model.EstadoDia, []model.Venta, []model.Gasto, error) {
	existente, err := s.dias.FindByFecha(ctx, fecha)
	if err != nil {
		return nil, nil, nil, err
	}
	ventas, err := s.ventas.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, nil, nil, err
	}
	gastos, err := s.gastos.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, nil, nil, err
	}
	return model.ResolverEstadoDia(fecha, existente), ventas, gastos, nil
}

// balanceTeorico derives (efectivoBruto, efectivoNeto, teorico):
// the cash-equivalent slice of revenue, net of expenses, on top of the fund.
func balanceTeorico(fondo decimal.Decimal, a dto.AnalisisVentas, gastos decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	bruto := a.Total.Sub(a.Tarjeta).Sub(a.Deposito)
	neto := bruto.Sub(gastos)
	return bruto, neto, fondo.Add(neto)
}

func totalConteo(req dto.ConteoRequest) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, denom := range denominacionesBilletes {
		qty, err := money.ParseCantidad(req.Billetes[denom])
		if err != nil {
			return decimal.Zero, fmt.Errorf("billetes[%s]: %w", denom, err)
		}
		total = total.Add(decimal.RequireFromString(denom).Mul(decimal.NewFromInt(int64(qty))))
	}
	for _, denom := range denominacionesMonedas {
		qty, err := money.ParseCantidad(req.Monedas[denom])
		if err != nil {
			return decimal.Zero, fmt.Errorf("monedas[%s]: %w", denom, err)
		}
		total = total.Add(decimal.RequireFromString(denom).Mul(decimal.NewFromInt(int64(qty))))
	}
	cheques, err := money.ParseMonto(req.Cheques)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cheques: %w", err)
	}
	otros, err := money.ParseMonto(req.Otros)
	if err != nil {
		return decimal.Zero, fmt.Errorf("otros: %w", err)
	}
	return total.Add(cheques).Add(otros), nil
}

func lotesTarjeta(req dto.ConteoRequest, a dto.AnalisisVentas) ([]dto.LoteTarjeta, error) {
	bac, err := money.ParseMonto(req.LoteBAC)
	if err != nil {
		return nil, fmt.Errorf("lote_bac: %w", err)
	}
	promerica, err := money.ParseMonto(req.LotePromerica)
	if err != nil {
		return nil, fmt.Errorf("lote_promerica: %w", err)
	}
	return []dto.LoteTarjeta{
		{Red: model.MetodoBAC, Lote: bac, Ventas: a.BAC, Diferencia: bac.Sub(a.BAC)},
		{Red: model.MetodoPromerica, Lote: promerica, Ventas: a.Promerica, Diferencia: promerica.Sub(a.Promerica)},
	}, nil
}

func (s *corteService) notificarCierre(ctx context.Context, fecha, actor string, estado *model.EstadoDia, fondo decimal.Decimal) {
	if s.notifier == nil {
		return
	}
	ventas, err := s.ventas.ListByFecha(ctx, fecha)
	if err != nil {
		log.Error().Err(err).Str("fecha", fecha).Msg("reporte de cierre: no se pudieron leer ventas")
		return
	}
	gastos, err := s.gastos.ListByFecha(ctx, fecha)
	if err != nil {
		log.Error().Err(err).Str("fecha", fecha).Msg("reporte de cierre: no se pudieron leer gastos")
		return
	}
	analisis := AnalizarVentas(ventas)
	totalGastos := TotalGastos(gastos)
	_, _, teorico := balanceTeorico(estado.FondoInicial, analisis, totalGastos)

	s.notifier.NotificarCierre(ctx, dto.ReporteCierre{
		Fecha:        fecha,
		CerradoPor:   actor,
		FondoInicial: estado.FondoInicial,
		FondoFinal:   fondo,
		Ventas:       analisis,
		Gastos:       totalGastos,
		Teorico:      teorico,
	})
}

func estadoDiaResponse(e *model.EstadoDia) *dto.EstadoDiaResponse {
	resp := &dto.EstadoDiaResponse{
		Fecha:        e.Fecha,
		Abierto:      e.Abierto,
		FondoInicial: e.FondoInicial,
		FondoFinal:   e.FondoFinal,
		CerradoPor:   e.CerradoPor,
	}
	if e.CerradoEn != nil {
		t := e.CerradoEn.Format(time.RFC3339)
		resp.CerradoEn = &t
	}
	return resp
}
