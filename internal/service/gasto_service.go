package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"viewspos/internal/dto"
	"viewspos/internal/model"
	"viewspos/internal/money"
	"viewspos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GastoService interface {
	Crear(ctx context.Context, req dto.GastoRequest) (*dto.GastoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	ListarPorFecha(ctx context.Context, fecha string) ([]dto.GastoResponse, error)
	ListarProveedores(ctx context.Context) ([]string, error)
}

type gastoService struct {
	repo  repository.GastoRepository
	corte CorteService
}

func NewGastoService(repo repository.GastoRepository, corte CorteService) GastoService {
	return &gastoService{repo: repo, corte: corte}
}

func (s *gastoService) Crear(ctx context.Context, req dto.GastoRequest) (*dto.GastoResponse, error) {
	if err := s.corte.VerificarDiaAbierto(ctx, req.Fecha); err != nil {
		return nil, err
	}
	if model.LlevaIVA(req.TipoDocumento) {
		if req.RazonSocial == nil || strings.TrimSpace(*req.RazonSocial) == "" {
			return nil, fmt.Errorf("%w: razon social requerida para credito fiscal", ErrDatosInvalidos)
		}
		if req.DUINIT == nil || strings.TrimSpace(*req.DUINIT) == "" {
			return nil, fmt.Errorf("%w: DUI/NIT requerido para credito fiscal", ErrDatosInvalidos)
		}
	}

	// IVA y total se derivan siempre del subtotal; el cliente no los manda.
	iva := decimal.Zero
	if model.LlevaIVA(req.TipoDocumento) {
		iva = money.Round2(req.Subtotal.Mul(model.TasaIVA))
	}

	gasto := &model.Gasto{
		Fecha:           req.Fecha,
		Proveedor:       strings.ToUpper(strings.TrimSpace(req.Proveedor)),
		Descripcion:     strings.ToUpper(strings.TrimSpace(req.Descripcion)),
		Subtotal:        req.Subtotal,
		IVA:             iva,
		Total:           req.Subtotal.Add(iva),
		MetodoPago:      req.MetodoPago,
		TipoDocumento:   req.TipoDocumento,
		NumeroDocumento: req.NumeroDocumento,
		RazonSocial:     req.RazonSocial,
		DUINIT:          req.DUINIT,
		Telefono:        req.Telefono,
		Direccion:       req.Direccion,
	}
	if err := s.repo.Create(ctx, gasto); err != nil {
		return nil, err
	}
	return gastoResponse(gasto), nil
}

func (s *gastoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	gasto, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoEncontrado
	}
	if err != nil {
		return err
	}
	if err := s.corte.VerificarDiaAbierto(ctx, gasto.Fecha); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *gastoService) ListarPorFecha(ctx context.Context, fecha string) ([]dto.GastoResponse, error) {
	gastos, err := s.repo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GastoResponse, 0, len(gastos))
	for i := range gastos {
		out = append(out, *gastoResponse(&gastos[i]))
	}
	return out, nil
}

func (s *gastoService) ListarProveedores(ctx context.Context) ([]string, error) {
	return s.repo.ListProveedores(ctx)
}

func gastoResponse(g *model.Gasto) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:              g.ID.String(),
		Fecha:           g.Fecha,
		Proveedor:       g.Proveedor,
		Descripcion:     g.Descripcion,
		Subtotal:        g.Subtotal,
		IVA:             g.IVA,
		Total:           g.Total,
		MetodoPago:      g.MetodoPago,
		TipoDocumento:   g.TipoDocumento,
		NumeroDocumento: g.NumeroDocumento,
		RazonSocial:     g.RazonSocial,
		DUINIT:          g.DUINIT,
		Telefono:        g.Telefono,
		Direccion:       g.Direccion,
	}
}
