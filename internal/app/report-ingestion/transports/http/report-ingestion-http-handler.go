package report_ingestion_http_handler

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"

	"github.com/init-pkg/vapt-ingest/domain/app"
	"github.com/init-pkg/vapt-ingest/domain/dtos"
	"github.com/init-pkg/vapt-ingest/domain/errs"
	report_ingestion_service "github.com/init-pkg/vapt-ingest/internal/app/report-ingestion/service"
	http_transport "github.com/init-pkg/vapt-ingest/internal/transports/http"

	"github.com/gofiber/fiber/v3"
)

const (
	FileField      = "file"
	SuccessMessage = "Report processed successfully"
)

type ReportIngestionHttpHandler struct {
	service app.ReportIngestionService
	log     *slog.Logger
}

func New(service app.ReportIngestionService, log *slog.Logger) *ReportIngestionHttpHandler {
	return &ReportIngestionHttpHandler{service, log}
}

func (this *ReportIngestionHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api")

	app.Post("/upload", this.upload)
}

// upload godoc
//
//	@Summary	Upload a VAPT report
//	@Tags		reports
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"Excel (.xlsx) report"
//	@Success	200		{object}	dtos.UploadReportResponse
//	@Failure	400		{object}	dtos.ErrorResponse
//	@Failure	500		{object}	dtos.ErrorResponse
//	@Router		/api/upload [post]
func (this *ReportIngestionHttpHandler) upload(fctx fiber.Ctx) error {
	var ctx = fctx.Context()

	header, err := fctx.FormFile(FileField)
	if err != nil {
		return http_transport.RespondError(fctx, errs.New(errs.KindMissingFile, report_ingestion_service.MissingFileMessage))
	}

	file, err := readFile(header)
	if err != nil {
		this.log.Error("failed to read uploaded file", "filename", header.Filename, "error", err)
		return http_transport.RespondError(fctx, errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindInternal}))
	}

	res, e := this.service.Ingest(ctx, file, header.Filename)
	if e != nil {
		return http_transport.RespondError(fctx, e)
	}

	return fctx.Status(fiber.StatusOK).JSON(dtos.UploadReportResponse{
		Message:              SuccessMessage,
		VulnerabilitiesCount: res.Count,
	})
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	if header == nil {
		return nil, errors.New("no file header")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
