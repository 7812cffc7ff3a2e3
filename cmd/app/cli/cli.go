package cli

import (
	"context"

	"go.uber.org/fx"

	"fittrack.dev/backend/internal/app"
	"fittrack.dev/backend/internal/app/appcontext"
)

func Start(module fx.Option) {
	app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}
