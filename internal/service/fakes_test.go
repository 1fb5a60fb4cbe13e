package service

// In-memory repository fakes shared by the service tests.

import (
	"context"
	"errors"
	"time"

	"viewspos/internal/dto"
	"viewspos/internal/model"
	"viewspos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── VentaRepository ──────────────────────────────────────────────────────────

type fakeVentaRepo struct {
	ventas []*model.Venta
}

var _ repository.VentaRepository = (*fakeVentaRepo)(nil)

func (r *fakeVentaRepo) Create(_ context.Context, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	r.ventas = append(r.ventas, v)
	return nil
}

func (r *fakeVentaRepo) Update(_ context.Context, v *model.Venta) error {
	for i := range r.ventas {
		if r.ventas[i].ID == v.ID {
			r.ventas[i] = v
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeVentaRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.ventas {
		if r.ventas[i].ID == id {
			r.ventas = append(r.ventas[:i], r.ventas[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	for _, v := range r.ventas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVentaRepo) ListByFecha(_ context.Context, fecha string) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.FechaDia() == fecha {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) ListByRango(_ context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if !v.Fecha.Before(desde) && !v.Fecha.After(hasta) {
			out = append(out, *v)
		}
	}
	return out, nil
}

// ── GastoRepository ──────────────────────────────────────────────────────────

type fakeGastoRepo struct {
	gastos []*model.Gasto
}

var _ repository.GastoRepository = (*fakeGastoRepo)(nil)

func (r *fakeGastoRepo) Create(_ context.Context, g *model.Gasto) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	g.CreatedAt = time.Now()
	r.gastos = append(r.gastos, g)
	return nil
}

func (r *fakeGastoRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.gastos {
		if r.gastos[i].ID == id {
			r.gastos = append(r.gastos[:i], r.gastos[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeGastoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Gasto, error) {
	for _, g := range r.gastos {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGastoRepo) ListByFecha(_ context.Context, fecha string) ([]model.Gasto, error) {
	var out []model.Gasto
	for _, g := range r.gastos {
		if g.Fecha == fecha {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGastoRepo) ListProveedores(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, g := range r.gastos {
		if !seen[g.Proveedor] {
			seen[g.Proveedor] = true
			out = append(out, g.Proveedor)
		}
	}
	return out, nil
}

// ── DiaRepository ────────────────────────────────────────────────────────────

type fakeDiaRepo struct {
	dias map[string]*model.EstadoDia
}

var _ repository.DiaRepository = (*fakeDiaRepo)(nil)

func newFakeDiaRepo() *fakeDiaRepo {
	return &fakeDiaRepo{dias: make(map[string]*model.EstadoDia)}
}

func (r *fakeDiaRepo) FindByFecha(_ context.Context, fecha string) (*model.EstadoDia, error) {
	e, ok := r.dias[fecha]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

func (r *fakeDiaRepo) Save(_ context.Context, e *model.EstadoDia) error {
	copia := *e
	r.dias[e.Fecha] = &copia
	return nil
}

func (r *fakeDiaRepo) SaveTx(_ *gorm.DB, e *model.EstadoDia) error {
	copia := *e
	r.dias[e.Fecha] = &copia
	return nil
}

// DB returns nil so runTx executes the callback directly (no real store).
func (r *fakeDiaRepo) DB() *gorm.DB { return nil }

// ── ConfiguracionService stub ────────────────────────────────────────────────

type stubConfig struct {
	cfg dto.ConfiguracionResponse
}

var _ ConfiguracionService = (*stubConfig)(nil)

func newStubConfig() *stubConfig {
	def := model.ConfiguracionDefault()
	return &stubConfig{cfg: dto.ConfiguracionResponse{
		TiposVenta:  def.TiposVenta,
		MetodosPago: def.MetodosPago,
	}}
}

func (s *stubConfig) Obtener(_ context.Context) (*dto.ConfiguracionResponse, error) {
	cfg := s.cfg
	return &cfg, nil
}

func (s *stubConfig) Actualizar(_ context.Context, req dto.ConfiguracionRequest) (*dto.ConfiguracionResponse, error) {
	s.cfg = dto.ConfiguracionResponse{TiposVenta: req.TiposVenta, MetodosPago: req.MetodosPago}
	cfg := s.cfg
	return &cfg, nil
}

// ── UsuarioRepository ────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	usuarios []*model.Usuario
}

var _ repository.UsuarioRepository = (*fakeUsuarioRepo)(nil)

func (r *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	r.usuarios = append(r.usuarios, u)
	return nil
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	for i := range r.usuarios {
		if r.usuarios[i].ID == u.ID {
			r.usuarios[i] = u
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeUsuarioRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.usuarios {
		if r.usuarios[i].ID == id {
			r.usuarios = append(r.usuarios[:i], r.usuarios[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}
