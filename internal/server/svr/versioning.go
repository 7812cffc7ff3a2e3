package svr

import (
	"github.com/gofiber/fiber/v2"
)

type Api struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*Api, *Meta) {
	api := app.Group("/api")
	meta := app.Group("/api/_")

	return &Api{Router: api}, &Meta{Router: meta}
}
