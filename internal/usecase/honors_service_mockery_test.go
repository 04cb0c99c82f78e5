package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/memory"
	honorsmock "github.com/riskibarqy/club-manager/internal/mocks/domain/honors"
	"github.com/stretchr/testify/mock"
)

func TestHonorsService_List_ClampsPageUsingMockery(t *testing.T) {
	t.Parallel()

	repo := honorsmock.NewRepository(t)
	service := NewHonorsService(repo, memory.NewCategoryRepository(memory.NewStore()), 10)
	filter := honors.Filter{Year: 2020}

	repo.On("Count", mock.Anything, filter).Return(23, nil).Once()
	repo.
		On("List", mock.Anything, filter, 10, 20).
		Return([]honors.Record{{ID: 1, Title: "Champion", Competition: "Cup", Year: 2020, GenreID: 1}}, nil).
		Once()

	got, err := service.List(context.Background(), filter, 9)
	if err != nil {
		t.Fatalf("list honors: %v", err)
	}
	if got.Page.Number != 3 || got.Page.TotalPages != 3 || len(got.Items) != 1 {
		t.Fatalf("unexpected page: %+v", got.Page)
	}
}

func TestHonorsService_Create_RejectsUnknownGenreUsingMockery(t *testing.T) {
	t.Parallel()

	repo := honorsmock.NewRepository(t)
	service := NewHonorsService(repo, memory.NewCategoryRepository(memory.NewStore()), 10)
	service.now = fixedClock

	_, err := service.Create(context.Background(), honors.Record{Title: "Champion", Competition: "Cup", Year: 2024, GenreID: 5})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestHonorsService_Create_InvalidYearUsingMockery(t *testing.T) {
	t.Parallel()

	repo := honorsmock.NewRepository(t)
	service := NewHonorsService(repo, memory.NewCategoryRepository(memory.NewStore()), 10)
	service.now = fixedClock

	_, err := service.Create(context.Background(), honors.Record{Title: "Champion", Competition: "Cup", Year: 1850, GenreID: 1})
	if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, honors.ErrInvalidRecord) {
		t.Fatalf("expected invalid record, got %v", err)
	}
}
