package findings_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/init-pkg/vapt-ingest/domain/app"
	"github.com/init-pkg/vapt-ingest/domain/entities"
	"github.com/init-pkg/vapt-ingest/domain/errs"
	"github.com/init-pkg/vapt-ingest/internal/testutil"
)

type fakeRepo struct {
	app.FindingRepository

	lastQuery app.FindingsQuery
	items     []entities.Finding
	err       error
}

func (this *fakeRepo) List(_ context.Context, q app.FindingsQuery) ([]entities.Finding, int64, error) {
	this.lastQuery = q
	return this.items, int64(len(this.items)), this.err
}

func (this *fakeRepo) Get(_ context.Context, id uint64) (*entities.Finding, error) {
	if this.err != nil {
		return nil, this.err
	}
	for i := range this.items {
		if this.items[i].ID == id {
			return &this.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestListClampsPaging(t *testing.T) {
	repo := &fakeRepo{items: []entities.Finding{{ID: 1, Name: "XSS"}}}
	s := New(repo, testutil.Logger())

	page, err := s.List(context.Background(), app.FindingsQuery{Limit: 0, Offset: -3})
	require.Nil(t, err)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.EqualValues(t, 1, page.Total)

	_, err = s.List(context.Background(), app.FindingsQuery{Limit: 10_000})
	require.Nil(t, err)
	assert.Equal(t, MaxLimit, repo.lastQuery.Limit)
}

func TestListRepositoryFailure(t *testing.T) {
	s := New(&fakeRepo{err: errors.New("connection refused")}, testutil.Logger())

	_, err := s.List(context.Background(), app.FindingsQuery{})
	require.NotNil(t, err)
	assert.Equal(t, errs.KindInternal, err.Kind())
}

func TestGet(t *testing.T) {
	s := New(&fakeRepo{items: []entities.Finding{{ID: 7, Name: "CSRF"}}}, testutil.Logger())

	f, err := s.Get(context.Background(), 7)
	require.Nil(t, err)
	assert.Equal(t, "CSRF", f.Name)

	_, err = s.Get(context.Background(), 8)
	require.NotNil(t, err)
	assert.Equal(t, errs.KindNotFound, err.Kind())
	assert.Equal(t, NotFoundMessage, err.Error())
}
