package http_transport

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

// HttpHandler is implemented by every feature transport that mounts routes.
type HttpHandler interface {
	Register(mainApp *fiber.App)
}

const handlersGroup = `group:"http_handlers"`

// AsHandler annotates a handler constructor so bootstrap collects it into the http_handlers group.
func AsHandler(constructor any) any {
	return fx.Annotate(
		constructor,
		fx.As(new(HttpHandler)),
		fx.ResultTags(handlersGroup),
	)
}

type HandlersParams struct {
	fx.In

	Handlers []HttpHandler `group:"http_handlers"`
}
