package repository

import (
	"context"
	"errors"

	"viewspos/internal/model"

	"gorm.io/gorm"
)

type ConfiguracionRepository interface {
	// Get returns the singleton settings row, seeding the defaults on
	// first access.
	Get(ctx context.Context) (*model.Configuracion, error)
	Save(ctx context.Context, c *model.Configuracion) error
}

type configuracionRepo struct{ db *gorm.DB }

func NewConfiguracionRepository(db *gorm.DB) ConfiguracionRepository {
	return &configuracionRepo{db: db}
}

func (r *configuracionRepo) Get(ctx context.Context) (*model.Configuracion, error) {
	var c model.Configuracion
	err := r.db.WithContext(ctx).First(&c, "id = 1").Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := model.ConfiguracionDefault()
		if err := r.db.WithContext(ctx).Create(def).Error; err != nil {
			return nil, err
		}
		return def, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *configuracionRepo) Save(ctx context.Context, c *model.Configuracion) error {
	c.ID = 1
	return r.db.WithContext(ctx).Save(c).Error
}
