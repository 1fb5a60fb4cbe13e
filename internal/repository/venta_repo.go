package repository

import (
	"context"
	"time"

	"viewspos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(ctx context.Context, v *model.Venta) error
	Update(ctx context.Context, v *model.Venta) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	// ListByFecha returns the sales of one calendar date (YYYY-MM-DD).
	ListByFecha(ctx context.Context, fecha string) ([]model.Venta, error)
	// ListByRango returns sales with Fecha in [desde, hasta] inclusive.
	ListByRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error)
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) Create(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) Update(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *ventaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Venta{}, id).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) ListByFecha(ctx context.Context, fecha string) ([]model.Venta, error) {
	dia, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return nil, err
	}
	var ventas []model.Venta
	err = r.db.WithContext(ctx).
		Where("fecha >= ? AND fecha < ?", dia, dia.AddDate(0, 0, 1)).
		Order("fecha ASC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListByRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Where("fecha >= ? AND fecha <= ?", desde, hasta).
		Order("fecha ASC").
		Find(&ventas).Error
	return ventas, err
}
