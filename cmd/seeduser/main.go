// Command seeduser creates the default super admin account if no user with
// the super-admin flag exists yet. Idempotent: safe to run on every deploy.
package main

import (
	"context"
	"os"
	"time"

	"viewspos/internal/config"
	"viewspos/internal/infra"
	"viewspos/internal/model"
	"viewspos/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	ctx := context.Background()
	repo := repository.NewUsuarioRepository(db)

	usuarios, err := repo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list users")
	}
	for _, u := range usuarios {
		if u.SuperAdmin {
			log.Info().Str("nombre", u.Nombre).Msg("super admin already exists — nothing to do")
			return
		}
	}

	recepcionista := model.RecepcionistaDiego
	admin := &model.Usuario{
		Nombre:        "Diego (Admin)",
		PIN:           "2211",
		Rol:           model.RolAdmin,
		Recepcionista: &recepcionista,
		SuperAdmin:    true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("failed to create super admin")
	}
	log.Info().Str("id", admin.ID.String()).Msg("super admin created")
}
