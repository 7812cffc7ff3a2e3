package infra

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"fittrack.dev/backend/internal/model"
)

// Migrator creates the backing tables. It is only reachable through the
// `migrate` CLI command and never runs as part of server startup.
type Migrator struct {
	db *bun.DB
}

func NewMigrator(db *bun.DB) *Migrator {
	return &Migrator{db: db}
}

func (m *Migrator) CreateTables(ctx context.Context) error {
	for _, table := range []any{
		(*model.User)(nil),
		(*model.Activity)(nil),
	} {
		if _, err := m.db.NewCreateTable().
			Model(table).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		log.Info().Str("evt.name", "migrate.table").Msgf("ensured table for %T", table)
	}
	return nil
}
