package mapping_module

import (
	header_mapping_service "github.com/init-pkg/vapt-ingest/internal/app/mapping/header"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		header_mapping_service.New,
	)
}
