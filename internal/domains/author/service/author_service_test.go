package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/repository"
	"library-api/internal/infrastructure/memstore"
	"library-api/internal/shared/apperror"
	"library-api/internal/shared/types"
	"library-api/pkg/patch"
)

// countingRepo records writes so tests can assert the store was never touched.
type countingRepo struct {
	repository.RepositoryInterface
	writes int
}

func (r *countingRepo) Replace(ctx context.Context, a *model.Author) (bool, error) {
	r.writes++
	return r.RepositoryInterface.Replace(ctx, a)
}

func newService(t *testing.T) (ServiceInterface, *countingRepo) {
	t.Helper()
	repo := &countingRepo{RepositoryInterface: repository.NewMemoryRepository(memstore.New())}
	return NewAuthorService(repo), repo
}

func date(y int, m time.Month, d int) types.Date {
	return types.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestCreate_IDsStrictlyIncrease(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		a, err := svc.Create(ctx, model.CreateAuthorRequest{Name: "X", BirthDate: date(2000, 1, 1)})
		require.NoError(t, err)
		assert.Greater(t, a.ID, last)
		last = a.ID
	}
}

func TestReplace_IDMismatchNeverTouchesStore(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, model.CreateAuthorRequest{Name: "X", BirthDate: date(2000, 1, 1)})
	require.NoError(t, err)

	err = svc.Replace(ctx, created.ID, model.ReplaceAuthorRequest{ID: created.ID + 1, Name: "Z", BirthDate: date(1990, 1, 1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
	assert.Zero(t, repo.writes)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Name)
}

func TestReplace_Missing(t *testing.T) {
	svc, _ := newService(t)
	err := svc.Replace(context.Background(), 9, model.ReplaceAuthorRequest{ID: 9, Name: "Z", BirthDate: date(1990, 1, 1)})
	assert.True(t, errors.Is(err, model.ErrAuthorNotFound))
}

func TestPatch_EmptyIsNoOpAndSingleField(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, model.CreateAuthorRequest{Name: "X", BirthDate: date(2000, 1, 1)})
	require.NoError(t, err)

	require.NoError(t, svc.Patch(ctx, created.ID, model.PatchAuthorRequest{}))
	assert.Zero(t, repo.writes)
	got, _ := svc.GetByID(ctx, created.ID)
	assert.Equal(t, *created, *got)

	require.NoError(t, svc.Patch(ctx, created.ID, model.PatchAuthorRequest{Name: patch.Of("Y")}))
	got, _ = svc.GetByID(ctx, created.ID)
	assert.Equal(t, "Y", got.Name)
	assert.Equal(t, created.BirthDate, got.BirthDate)
}

func TestPatch_Missing(t *testing.T) {
	svc, _ := newService(t)
	err := svc.Patch(context.Background(), 1, model.PatchAuthorRequest{Name: patch.Of("Y")})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDelete(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, model.CreateAuthorRequest{Name: "X", BirthDate: date(2000, 1, 1)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.True(t, errors.Is(svc.Delete(ctx, created.ID), model.ErrAuthorNotFound))
}
