package findings_service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/init-pkg/vapt-ingest/domain/app"
	"github.com/init-pkg/vapt-ingest/domain/entities"
	"github.com/init-pkg/vapt-ingest/domain/errs"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500

	NotFoundMessage = "Vulnerability not found"
)

type FindingsService struct {
	repo app.FindingRepository
	log  *slog.Logger
}

var _ app.FindingsService = &FindingsService{}

func New(repo app.FindingRepository, log *slog.Logger) *FindingsService {
	return &FindingsService{repo, log}
}

func (this *FindingsService) List(ctx context.Context, query app.FindingsQuery) (*app.FindingsPage, errs.Error) {
	if query.Limit <= 0 {
		query.Limit = DefaultLimit
	}
	if query.Limit > MaxLimit {
		query.Limit = MaxLimit
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	items, total, err := this.repo.List(ctx, query)
	if err != nil {
		this.log.Error("failed to list findings", "error", err)
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindInternal})
	}

	return &app.FindingsPage{
		Items:  items,
		Total:  total,
		Limit:  query.Limit,
		Offset: query.Offset,
	}, nil
}

func (this *FindingsService) Get(ctx context.Context, id uint64) (*entities.Finding, errs.Error) {
	finding, err := this.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindNotFound, Message: NotFoundMessage})
	}
	if err != nil {
		this.log.Error("failed to get finding", "id", id, "error", err)
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindInternal})
	}

	return finding, nil
}
