package app

import (
	"context"

	"github.com/init-pkg/vapt-ingest/domain/entities"
	"github.com/init-pkg/vapt-ingest/domain/errs"
)

type FindingsQuery struct {
	Limit    int
	Offset   int
	Severity string
}

type FindingsPage struct {
	Items  []entities.Finding
	Total  int64
	Limit  int
	Offset int
}

type FindingRepository interface {
	// CreateBatch inserts all findings in one transaction and fills in their ids.
	CreateBatch(ctx context.Context, findings []*entities.Finding) error
	List(ctx context.Context, query FindingsQuery) ([]entities.Finding, int64, error)
	Get(ctx context.Context, id uint64) (*entities.Finding, error)
	Count(ctx context.Context) (int64, error)
}

type FindingsService interface {
	List(ctx context.Context, query FindingsQuery) (*FindingsPage, errs.Error)
	Get(ctx context.Context, id uint64) (*entities.Finding, errs.Error)
}
