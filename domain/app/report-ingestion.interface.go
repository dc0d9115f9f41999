package app

import (
	"context"
	"time"

	"github.com/init-pkg/vapt-ingest/domain/errs"
)

type IngestReportResult struct {
	BatchID string `json:"batch_id"`
	Count   int    `json:"count"`
	FirstID uint64 `json:"first_id,omitempty"`
	LastID  uint64 `json:"last_id,omitempty"`
}

type ReportIngestionService interface {
	Ingest(ctx context.Context, file []byte, filename string) (*IngestReportResult, errs.Error)
}

type ReportIngestedEvent struct {
	BatchID  string `json:"batch_id"`
	Filename string `json:"filename"`
	Count    int    `json:"count"`
	FirstID  uint64 `json:"first_id"`
	LastID   uint64 `json:"last_id"`
	// StoredTotal is the number of findings in the store after the commit.
	StoredTotal int64     `json:"stored_total"`
	IngestedAt  time.Time `json:"ingested_at"`
}

// EventPublisher is notified after a batch has been committed.
type EventPublisher interface {
	PublishReportIngested(ctx context.Context, event ReportIngestedEvent) error
}
