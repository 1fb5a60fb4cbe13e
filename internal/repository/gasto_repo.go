package repository

import (
	"context"

	"viewspos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GastoRepository interface {
	Create(ctx context.Context, g *model.Gasto) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Gasto, error)
	ListByFecha(ctx context.Context, fecha string) ([]model.Gasto, error)
	// ListProveedores returns the distinct provider names seen in gastos,
	// used by the expense form for autocompletion.
	ListProveedores(ctx context.Context) ([]string, error)
}

type gastoRepo struct{ db *gorm.DB }

func NewGastoRepository(db *gorm.DB) GastoRepository { return &gastoRepo{db: db} }

func (r *gastoRepo) Create(ctx context.Context, g *model.Gasto) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gastoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Gasto{}, id).Error
}

func (r *gastoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Gasto, error) {
	var g model.Gasto
	err := r.db.WithContext(ctx).First(&g, id).Error
	return &g, err
}

func (r *gastoRepo) ListByFecha(ctx context.Context, fecha string) ([]model.Gasto, error) {
	var gastos []model.Gasto
	err := r.db.WithContext(ctx).
		Where("fecha = ?", fecha).
		Order("created_at ASC").
		Find(&gastos).Error
	return gastos, err
}

func (r *gastoRepo) ListProveedores(ctx context.Context) ([]string, error) {
	var nombres []string
	err := r.db.WithContext(ctx).
		Model(&model.Gasto{}).
		Distinct("proveedor").
		Order("proveedor ASC").
		Pluck("proveedor", &nombres).Error
	return nombres, err
}
