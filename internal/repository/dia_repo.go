package repository

import (
	"context"
	"errors"

	"viewspos/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DiaRepository interface {
	// FindByFecha returns nil (no error) when the date has no record —
	// the caller resolves the implicit-open default.
	FindByFecha(ctx context.Context, fecha string) (*model.EstadoDia, error)
	// Save upserts by fecha: day records are created lazily on first close.
	Save(ctx context.Context, e *model.EstadoDia) error
	// SaveTx upserts within an existing transaction.
	SaveTx(tx *gorm.DB, e *model.EstadoDia) error
	// DB exposes the underlying handle so the service can run the
	// close-and-seed pair inside one transaction.
	DB() *gorm.DB
}

type diaRepo struct{ db *gorm.DB }

func NewDiaRepository(db *gorm.DB) DiaRepository { return &diaRepo{db: db} }

func (r *diaRepo) FindByFecha(ctx context.Context, fecha string) (*model.EstadoDia, error) {
	var e model.EstadoDia
	err := r.db.WithContext(ctx).First(&e, "fecha = ?", fecha).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *diaRepo) Save(ctx context.Context, e *model.EstadoDia) error {
	return upsertEstadoDia(r.db.WithContext(ctx), e)
}

func (r *diaRepo) SaveTx(tx *gorm.DB, e *model.EstadoDia) error {
	return upsertEstadoDia(tx, e)
}

func (r *diaRepo) DB() *gorm.DB { return r.db }

func upsertEstadoDia(db *gorm.DB, e *model.EstadoDia) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fecha"}},
		UpdateAll: true,
	}).Create(e).Error
}
