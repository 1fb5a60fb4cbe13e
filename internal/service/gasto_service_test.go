package service

import (
	"context"
	"testing"

	"viewspos/internal/dto"
	"viewspos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gastoFixture struct {
	repo *fakeGastoRepo
	dias *fakeDiaRepo
	svc  GastoService
}

func newGastoFixture() *gastoFixture {
	f := &gastoFixture{
		repo: &fakeGastoRepo{},
		dias: newFakeDiaRepo(),
	}
	corte := NewCorteService(&fakeVentaRepo{}, f.repo, f.dias, newStubConfig(), nil)
	f.svc = NewGastoService(f.repo, corte)
	return f
}

func gastoReq(mutate ...func(*dto.GastoRequest)) dto.GastoRequest {
	req := dto.GastoRequest{
		Fecha:           "2026-08-20",
		Proveedor:       "distribuidora lopez",
		Descripcion:     "hielo y refrescos",
		Subtotal:        decimal.NewFromInt(100),
		MetodoPago:      model.MetodoEfectivo,
		TipoDocumento:   model.DocumentoRecibo,
		NumeroDocumento: "R-0042",
	}
	for _, m := range mutate {
		m(&req)
	}
	return req
}

func TestCrearGastoSinIVA(t *testing.T) {
	f := newGastoFixture()

	resp, err := f.svc.Crear(context.Background(), gastoReq())
	require.NoError(t, err)

	assert.True(t, resp.IVA.IsZero())
	assert.Equal(t, "100.00", resp.Total.StringFixed(2))
}

func TestCrearGastoCreditoFiscalDerivaIVA(t *testing.T) {
	rs := "DISTRIBUIDORA LOPEZ SA DE CV"
	nit := "0614-120389-101-2"

	for _, tipo := range []string{model.DocumentoCCF, model.DocumentoCreditoFiscal} {
		f := newGastoFixture()
		resp, err := f.svc.Crear(context.Background(), gastoReq(func(r *dto.GastoRequest) {
			r.TipoDocumento = tipo
			r.Subtotal = decimal.RequireFromString("88.50")
			r.RazonSocial = &rs
			r.DUINIT = &nit
		}))
		require.NoError(t, err, tipo)

		// 88.50 * 0.13 = 11.505 -> 11.51
		assert.Equal(t, "11.51", resp.IVA.StringFixed(2), tipo)
		assert.Equal(t, "100.01", resp.Total.StringFixed(2), tipo)
	}
}

func TestCrearGastoCreditoFiscalExigeDatosFiscales(t *testing.T) {
	f := newGastoFixture()

	_, err := f.svc.Crear(context.Background(), gastoReq(func(r *dto.GastoRequest) {
		r.TipoDocumento = model.DocumentoCCF
	}))
	require.Error(t, err)
	assert.Empty(t, f.repo.gastos)

	rs := "PROVEEDOR SA"
	_, err = f.svc.Crear(context.Background(), gastoReq(func(r *dto.GastoRequest) {
		r.TipoDocumento = model.DocumentoCCF
		r.RazonSocial = &rs
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DUI/NIT")
}

func TestCrearGastoNormalizaMayusculas(t *testing.T) {
	f := newGastoFixture()

	resp, err := f.svc.Crear(context.Background(), gastoReq())
	require.NoError(t, err)
	assert.Equal(t, "DISTRIBUIDORA LOPEZ", resp.Proveedor)
	assert.Equal(t, "HIELO Y REFRESCOS", resp.Descripcion)
}

func TestCrearGastoDiaCerrado(t *testing.T) {
	f := newGastoFixture()
	f.dias.dias["2026-08-20"] = &model.EstadoDia{Fecha: "2026-08-20", Abierto: false}

	_, err := f.svc.Crear(context.Background(), gastoReq())
	assert.ErrorIs(t, err, ErrDiaCerrado)
	assert.Empty(t, f.repo.gastos)
}

func TestEliminarGastoDiaCerrado(t *testing.T) {
	f := newGastoFixture()
	_, err := f.svc.Crear(context.Background(), gastoReq())
	require.NoError(t, err)

	f.dias.dias["2026-08-20"] = &model.EstadoDia{Fecha: "2026-08-20", Abierto: false}

	err = f.svc.Eliminar(context.Background(), f.repo.gastos[0].ID)
	assert.ErrorIs(t, err, ErrDiaCerrado)
	assert.Len(t, f.repo.gastos, 1)
}

func TestEliminarGastoInexistente(t *testing.T) {
	f := newGastoFixture()
	err := f.svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestListarProveedores(t *testing.T) {
	f := newGastoFixture()
	_, err := f.svc.Crear(context.Background(), gastoReq())
	require.NoError(t, err)
	_, err = f.svc.Crear(context.Background(), gastoReq(func(r *dto.GastoRequest) {
		r.Proveedor = "agua cristal"
	}))
	require.NoError(t, err)

	proveedores, err := f.svc.ListarProveedores(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"DISTRIBUIDORA LOPEZ", "AGUA CRISTAL"}, proveedores)
}
