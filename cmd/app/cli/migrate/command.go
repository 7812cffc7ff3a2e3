package migrate

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "fittrack.dev/backend/cmd/app/cli"
	"fittrack.dev/backend/internal/infra"
)

type CommandDeps struct {
	fx.In

	Migrator *infra.Migrator
}

func depsFn() func() CommandDeps {
	return func() CommandDeps {
		var deps CommandDeps
		cliapp.Start(fx.Populate(&deps))
		return deps
	}
}

func Command() *cli.Command {
	fn := depsFn()
	return &cli.Command{
		Name:        "migrate",
		Description: "create the users and activities tables if they do not yet exist",
		Action: func(ctx *cli.Context) error {
			return run(ctx.Context, fn())
		},
	}
}
