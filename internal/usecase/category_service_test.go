package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Genres(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewCategoryService(memory.NewCategoryRepository(memory.NewStore()))

	created, err := svc.CreateGenre(ctx, "m")
	require.NoError(t, err)
	require.Equal(t, category.GenreMale, created.Code)

	_, err = svc.CreateGenre(ctx, "M")
	require.True(t, errors.Is(err, ErrConflict), "got %v", err)

	_, err = svc.CreateGenre(ctx, "X")
	require.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)

	require.NoError(t, svc.DeleteGenre(ctx, created.ID))
	err = svc.DeleteGenre(ctx, created.ID)
	require.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestCategoryService_DeleteGenreInUse(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	svc := NewCategoryService(repos.categories)
	men := repos.genre(t, category.GenreMale)

	err := svc.DeleteGenre(context.Background(), men.ID)
	require.True(t, errors.Is(err, ErrConflict), "got %v", err)
	require.True(t, errors.Is(err, category.ErrGenreInUse), "got %v", err)
}

func TestCategoryService_AgeCategories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewCategoryService(memory.NewCategoryRepository(memory.NewStore()))

	seniors, err := svc.CreateAgeCategory(ctx, category.AgeCategory{Name: "Seniors", AgeMin: intPtr(19)})
	require.NoError(t, err)
	_, err = svc.CreateAgeCategory(ctx, category.AgeCategory{Name: "U15", AgeMin: intPtr(13), AgeMax: intPtr(15)})
	require.NoError(t, err)
	_, err = svc.CreateAgeCategory(ctx, category.AgeCategory{Name: "Bad", AgeMin: intPtr(15), AgeMax: intPtr(13)})
	require.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)

	items, err := svc.ListAgeCategories(ctx)
	require.NoError(t, err)
	require.Equal(t, "U15", items[0].Name)

	seniors.AgeMax = intPtr(99)
	_, err = svc.UpdateAgeCategory(ctx, seniors)
	require.NoError(t, err)

	seniors.ID = 9999
	_, err = svc.UpdateAgeCategory(ctx, seniors)
	require.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}
