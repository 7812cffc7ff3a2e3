package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"fittrack.dev/backend/cmd/app/cli/migrate"
	"fittrack.dev/backend/cmd/app/server"
	"fittrack.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "fittrack",
		Description: "The FitTrack activity tracker backend. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			migrate.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
