package controller

import (
	"go.uber.org/fx"

	controllerapi "fittrack.dev/backend/internal/controller/api"
	controllermeta "fittrack.dev/backend/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (api)
		controllerapi.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
