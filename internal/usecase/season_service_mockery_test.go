package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	seasonmock "github.com/riskibarqy/club-manager/internal/mocks/domain/season"
	"github.com/stretchr/testify/mock"
)

func TestSeasonService_Create_TrimsPeriodUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := seasonmock.NewRepository(t)
	service := NewSeasonService(repo)

	repo.
		On("Create", mock.Anything, season.Season{Period: "2025-2026"}).
		Return(season.Season{ID: 7, Period: "2025-2026"}, nil).
		Once()

	got, err := service.Create(ctx, season.Season{ID: 99, Period: "  2025-2026 "})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("unexpected id: %d", got.ID)
	}
}

func TestSeasonService_Create_DuplicateIsConflictUsingMockery(t *testing.T) {
	t.Parallel()

	repo := seasonmock.NewRepository(t)
	service := NewSeasonService(repo)

	repo.
		On("Create", mock.Anything, mock.AnythingOfType("season.Season")).
		Return(season.Season{}, season.ErrDuplicatePeriod).
		Once()

	_, err := service.Create(context.Background(), season.Season{Period: "2024-2025"})
	if !errors.Is(err, ErrConflict) || !errors.Is(err, season.ErrDuplicatePeriod) {
		t.Fatalf("expected conflict wrapping duplicate period, got %v", err)
	}
}

func TestSeasonService_Create_BlankPeriodSkipsRepositoryUsingMockery(t *testing.T) {
	t.Parallel()

	repo := seasonmock.NewRepository(t)
	service := NewSeasonService(repo)

	_, err := service.Create(context.Background(), season.Season{Period: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeasonService_Delete_MissingUsingMockery(t *testing.T) {
	t.Parallel()

	repo := seasonmock.NewRepository(t)
	service := NewSeasonService(repo)

	repo.On("Delete", mock.Anything, int64(3)).Return(false, nil).Once()

	if err := service.Delete(context.Background(), 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
