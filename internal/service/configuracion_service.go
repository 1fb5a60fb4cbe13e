package service

import (
	"context"
	"encoding/json"
	"time"

	"viewspos/internal/dto"
	"viewspos/internal/model"
	"viewspos/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	configCacheKey = "cache:configuracion"
	configCacheTTL = 10 * time.Minute
)

// ConfiguracionService serves the settings snapshot every computation reads.
// Reads go through a Redis cache; updates write through and invalidate it.
type ConfiguracionService interface {
	Obtener(ctx context.Context) (*dto.ConfiguracionResponse, error)
	Actualizar(ctx context.Context, req dto.ConfiguracionRequest) (*dto.ConfiguracionResponse, error)
}

type configuracionService struct {
	repo repository.ConfiguracionRepository
	rdb  *redis.Client
}

// NewConfiguracionService accepts a nil rdb, in which case caching is off.
func NewConfiguracionService(repo repository.ConfiguracionRepository, rdb *redis.Client) ConfiguracionService {
	return &configuracionService{repo: repo, rdb: rdb}
}

func (s *configuracionService) Obtener(ctx context.Context) (*dto.ConfiguracionResponse, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, configCacheKey).Bytes(); err == nil {
			var cached dto.ConfiguracionResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ConfiguracionResponse{
		TiposVenta:  cfg.TiposVenta,
		MetodosPago: cfg.MetodosPago,
	}
	s.cachear(ctx, resp)
	return resp, nil
}

func (s *configuracionService) Actualizar(ctx context.Context, req dto.ConfiguracionRequest) (*dto.ConfiguracionResponse, error) {
	cfg := &model.Configuracion{
		ID:          1,
		TiposVenta:  req.TiposVenta,
		MetodosPago: req.MetodosPago,
	}
	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, configCacheKey).Err(); err != nil {
			log.Warn().Err(err).Msg("configuracion: no se pudo invalidar cache")
		}
	}
	return &dto.ConfiguracionResponse{
		TiposVenta:  req.TiposVenta,
		MetodosPago: req.MetodosPago,
	}, nil
}

func (s *configuracionService) cachear(ctx context.Context, resp *dto.ConfiguracionResponse) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, configCacheKey, raw, configCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("configuracion: no se pudo escribir cache")
	}
}
