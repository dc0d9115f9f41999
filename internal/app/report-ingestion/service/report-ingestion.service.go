package report_ingestion_service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/init-pkg/vapt-ingest/domain/app"
	"github.com/init-pkg/vapt-ingest/domain/errs"
	header_mapping_service "github.com/init-pkg/vapt-ingest/internal/app/mapping/header"

	"github.com/google/uuid"
)

const (
	AcceptedExtension = ".xlsx"

	MissingFileMessage       = "No file uploaded"
	UnsupportedFormatMessage = "Only Excel (.xlsx) files are supported"
)

type ReportIngestionService struct {
	parser    app.ExcelParserService
	headers   *header_mapping_service.HeaderMappingService
	repo      app.FindingRepository
	publisher app.EventPublisher
	log       *slog.Logger
}

var _ app.ReportIngestionService = &ReportIngestionService{}

func New(
	parser app.ExcelParserService,
	headers *header_mapping_service.HeaderMappingService,
	repo app.FindingRepository,
	publisher app.EventPublisher,
	log *slog.Logger,
) *ReportIngestionService {
	return &ReportIngestionService{parser, headers, repo, publisher, log}
}

// Ingest stores every data row of an .xlsx report as one finding. Rows are
// committed together: on any error nothing from the file is left in the store.
// Uploading the same file twice stores its rows twice.
func (this *ReportIngestionService) Ingest(ctx context.Context, file []byte, filename string) (*app.IngestReportResult, errs.Error) {
	if !strings.HasSuffix(strings.ToLower(strings.TrimSpace(filename)), AcceptedExtension) {
		return nil, errs.New(errs.KindUnsupportedFormat, UnsupportedFormatMessage)
	}
	if len(file) == 0 {
		return nil, errs.New(errs.KindMissingFile, MissingFileMessage)
	}

	var (
		batchID = uuid.NewString()
		log     = this.log.With("batch_id", batchID, "filename", filename)
	)

	parsed, err := this.parser.Parse(ctx, file)
	if err != nil {
		if errs.Is(err, errs.KindSchemaMismatch) {
			log.Info("report rejected", "error", err.Unwrap())
		} else {
			log.Warn("report could not be parsed", "error", err.Unwrap())
		}
		return nil, err
	}

	columns, err := this.headers.MapRequiredColumns(parsed.Header)
	if err != nil {
		log.Info("report rejected", "error", err.Unwrap())
		return nil, err
	}

	findings, e := buildFindings(parsed, columns)
	if e != nil {
		log.Info("report rejected", "error", e)
		return nil, errs.WrapAppError(e, &errs.ErrorOpts{Kind: errs.KindPersistenceFailure})
	}

	if e := this.repo.CreateBatch(ctx, findings); e != nil {
		log.Error("batch rolled back", "rows", len(findings), "error", e)
		return nil, errs.WrapAppError(e, &errs.ErrorOpts{Kind: errs.KindPersistenceFailure})
	}

	result := &app.IngestReportResult{BatchID: batchID, Count: len(findings)}
	if len(findings) > 0 {
		result.FirstID = findings[0].ID
		result.LastID = findings[len(findings)-1].ID
	}

	log.Info("report ingested", "count", result.Count, "first_id", result.FirstID, "last_id", result.LastID)

	this.publish(ctx, log, filename, result)

	return result, nil
}

func (this *ReportIngestionService) publish(ctx context.Context, log *slog.Logger, filename string, result *app.IngestReportResult) {
	event := app.ReportIngestedEvent{
		BatchID:    result.BatchID,
		Filename:   filename,
		Count:      result.Count,
		FirstID:    result.FirstID,
		LastID:     result.LastID,
		IngestedAt: time.Now().UTC(),
	}

	total, err := this.repo.Count(ctx)
	if err != nil {
		log.Warn("stored total unavailable", "error", err)
	}
	event.StoredTotal = total

	if err := this.publisher.PublishReportIngested(ctx, event); err != nil {
		log.Warn("report.ingested event not published", "error", err)
	}
}
