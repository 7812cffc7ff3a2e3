package migrate

import (
	"context"

	"github.com/rs/zerolog/log"
)

func run(ctx context.Context, deps CommandDeps) error {
	if err := deps.Migrator.CreateTables(ctx); err != nil {
		return err
	}

	log.Info().Str("evt.name", "migrate").Msg("schema is up to date")
	return nil
}
