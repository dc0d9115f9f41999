package findings_module

import (
	"github.com/init-pkg/vapt-ingest/domain/app"
	finding_repository "github.com/init-pkg/vapt-ingest/internal/app/findings/repository"
	findings_service "github.com/init-pkg/vapt-ingest/internal/app/findings/service"
	findings_http_handler "github.com/init-pkg/vapt-ingest/internal/app/findings/transports/http"
	http_transport "github.com/init-pkg/vapt-ingest/internal/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(finding_repository.New, fx.As(new(app.FindingRepository))),
		fx.Annotate(findings_service.New, fx.As(new(app.FindingsService))),
		http_transport.AsHandler(findings_http_handler.New),
	)
}
