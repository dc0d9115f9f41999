package bootstrap

import (
	database_client "github.com/init-pkg/vapt-ingest/internal/clients/database"
	rabbitmq_client "github.com/init-pkg/vapt-ingest/internal/clients/rabbitmq"
	"go.uber.org/fx"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			database_client.New,
			rabbitmq_client.New,
		),
	)
}
