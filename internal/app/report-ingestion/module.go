package report_ingestion_module

import (
	"github.com/init-pkg/vapt-ingest/domain/app"
	report_ingestion_service "github.com/init-pkg/vapt-ingest/internal/app/report-ingestion/service"
	report_ingestion_http_handler "github.com/init-pkg/vapt-ingest/internal/app/report-ingestion/transports/http"
	http_transport "github.com/init-pkg/vapt-ingest/internal/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(report_ingestion_service.New, fx.As(new(app.ReportIngestionService))),
		http_transport.AsHandler(report_ingestion_http_handler.New),
	)
}
