package server

import (
	"go.uber.org/fx"

	"fittrack.dev/backend/internal/server/httpserver"
	"fittrack.dev/backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
