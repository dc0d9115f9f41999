package bootstrap

import (
	excel_parser_module "github.com/init-pkg/vapt-ingest/internal/app/excel-parser"
	findings_module "github.com/init-pkg/vapt-ingest/internal/app/findings"
	mapping_module "github.com/init-pkg/vapt-ingest/internal/app/mapping"
	report_ingestion_module "github.com/init-pkg/vapt-ingest/internal/app/report-ingestion"
	"go.uber.org/fx"
)

func appOptions() fx.Option {
	return fx.Options(
		excel_parser_module.Register(),
		mapping_module.Register(),
		findings_module.Register(),
		report_ingestion_module.Register(),
	)
}
