package findings_http_handler

import (
	"log/slog"
	"strconv"

	"github.com/init-pkg/vapt-ingest/domain/app"
	"github.com/init-pkg/vapt-ingest/domain/dtos"
	"github.com/init-pkg/vapt-ingest/domain/errs"
	http_transport "github.com/init-pkg/vapt-ingest/internal/transports/http"

	"github.com/gofiber/fiber/v3"
	"github.com/invopop/jsonschema"
)

func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var FindingSchema = GenerateSchema[dtos.FindingDto]()

type FindingsHttpHandler struct {
	service app.FindingsService
	log     *slog.Logger
}

func New(service app.FindingsService, log *slog.Logger) *FindingsHttpHandler {
	return &FindingsHttpHandler{service, log}
}

func (this *FindingsHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/vulnerabilities")

	app.Get("/", this.list)
	app.Get("/schema", this.schema)
	app.Get("/:id", this.get)
}

// list godoc
//
//	@Summary	List stored vulnerabilities in upload order
//	@Tags		vulnerabilities
//	@Produce	json
//	@Param		limit		query		int		false	"Page size (1-500)"	default(50)
//	@Param		offset		query		int		false	"Rows to skip"
//	@Param		severity	query		string	false	"Exact severity, case-insensitive"
//	@Success	200			{object}	dtos.ListFindingsResponse
//	@Failure	400			{object}	dtos.ErrorResponse
//	@Router		/api/vulnerabilities [get]
func (this *FindingsHttpHandler) list(fctx fiber.Ctx) error {
	var req dtos.ListFindingsRequest
	if err := fctx.Bind().Query(&req); err != nil {
		return http_transport.RespondError(fctx, errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindValidation}))
	}

	page, e := this.service.List(fctx.Context(), app.FindingsQuery{
		Limit:    req.Limit,
		Offset:   req.Offset,
		Severity: req.Severity,
	})
	if e != nil {
		return http_transport.RespondError(fctx, e)
	}

	items := make([]dtos.FindingDto, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, dtos.NewFindingDto(&page.Items[i]))
	}

	return fctx.JSON(dtos.ListFindingsResponse{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// get godoc
//
//	@Summary	Get one vulnerability
//	@Tags		vulnerabilities
//	@Produce	json
//	@Param		id	path		int	true	"Vulnerability id"
//	@Success	200	{object}	dtos.FindingDto
//	@Failure	400	{object}	dtos.ErrorResponse
//	@Failure	404	{object}	dtos.ErrorResponse
//	@Router		/api/vulnerabilities/{id} [get]
func (this *FindingsHttpHandler) get(fctx fiber.Ctx) error {
	id, err := strconv.ParseUint(fctx.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return http_transport.RespondError(fctx, errs.New(errs.KindValidation, "Invalid vulnerability id"))
	}

	finding, e := this.service.Get(fctx.Context(), id)
	if e != nil {
		return http_transport.RespondError(fctx, e)
	}

	return fctx.JSON(dtos.NewFindingDto(finding))
}

// schema godoc
//
//	@Summary	JSON schema of a vulnerability record
//	@Tags		vulnerabilities
//	@Produce	json
//	@Success	200
//	@Router		/api/vulnerabilities/schema [get]
func (this *FindingsHttpHandler) schema(fctx fiber.Ctx) error {
	return fctx.JSON(FindingSchema)
}
