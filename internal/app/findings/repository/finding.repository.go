package finding_repository

import (
	"context"
	"strings"

	"github.com/init-pkg/vapt-ingest/domain/app"
	"github.com/init-pkg/vapt-ingest/domain/entities"
	"github.com/init-pkg/vapt-ingest/internal/config"

	"gorm.io/gorm"
)

const defaultBatchSize = 100

type FindingRepository struct {
	db        *gorm.DB
	batchSize int
}

var _ app.FindingRepository = &FindingRepository{}

func New(db *gorm.DB, cfg *config.Config) *FindingRepository {
	batchSize := cfg.Infrastructure.Db.InsertBatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &FindingRepository{db, batchSize}
}

// CreateBatch writes all findings in slice order inside a single transaction.
// Either every finding is committed with its id filled in, or none is.
func (this *FindingRepository) CreateBatch(ctx context.Context, findings []*entities.Finding) error {
	if len(findings) == 0 {
		return nil
	}

	return this.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(findings, this.batchSize).Error
	})
}

func (this *FindingRepository) List(ctx context.Context, query app.FindingsQuery) ([]entities.Finding, int64, error) {
	filtered := func() *gorm.DB {
		q := this.db.WithContext(ctx).Model(&entities.Finding{})
		if severity := strings.TrimSpace(query.Severity); severity != "" {
			q = q.Where("LOWER(severity) = ?", strings.ToLower(severity))
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var findings []entities.Finding
	err := filtered().Order("id ASC").Limit(query.Limit).Offset(query.Offset).Find(&findings).Error
	if err != nil {
		return nil, 0, err
	}

	return findings, total, nil
}

// Get returns gorm.ErrRecordNotFound when no finding has the id.
func (this *FindingRepository) Get(ctx context.Context, id uint64) (*entities.Finding, error) {
	var finding entities.Finding
	if err := this.db.WithContext(ctx).First(&finding, id).Error; err != nil {
		return nil, err
	}
	return &finding, nil
}

func (this *FindingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := this.db.WithContext(ctx).Model(&entities.Finding{}).Count(&n).Error
	return n, err
}
