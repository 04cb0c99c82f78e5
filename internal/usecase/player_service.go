package usecase

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

const defaultRecategorizeWorkers = 4

type PlayerService struct {
	repo         player.Repository
	categoryRepo category.Repository
	logger       *logging.Logger
	workers      int
	now          func() time.Time
}

func NewPlayerService(repo player.Repository, categoryRepo category.Repository, workers int, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultRecategorizeWorkers
	}
	return &PlayerService{
		repo:         repo,
		categoryRepo: categoryRepo,
		logger:       logger,
		workers:      workers,
		now:          time.Now,
	}
}

func (s *PlayerService) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	filter.Search = strings.TrimSpace(filter.Search)
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "list players")
	}
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	item, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, errors.Wrap(err, "get player")
	}
	if !ok {
		return player.Player{}, errors.Newf("%w: player=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *PlayerService) Create(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	if err := s.prepare(ctx, &item); err != nil {
		return player.Player{}, err
	}
	item.ID = 0
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return player.Player{}, errors.Wrap(err, "create player")
	}
	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	if err := s.prepare(ctx, &item); err != nil {
		return player.Player{}, err
	}
	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return player.Player{}, errors.Wrap(err, "update player")
	}
	if !updated {
		return player.Player{}, errors.Newf("%w: player=%d", ErrNotFound, item.ID)
	}
	return item, nil
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete player")
	}
	if !deleted {
		return errors.Newf("%w: player=%d", ErrNotFound, id)
	}
	return nil
}

func (s *PlayerService) prepare(ctx context.Context, item *player.Player) error {
	if err := item.Normalize(s.now().UTC()); err != nil {
		return invalid(err)
	}
	genreID := item.GenreID
	return checkCategoryRefs(ctx, s.categoryRepo, &genreID, item.AgeCategoryID)
}

type RecategorizeResult struct {
	Scanned     int `json:"scanned"`
	Updated     int `json:"updated"`
	Failed      int `json:"failed"`
	WorkerCount int `json:"worker_count"`
}

// Recategorize recomputes every player's age category from today's age.
// Each write is independent; a failed write is counted and logged without
// stopping the others.
func (s *PlayerService) Recategorize(ctx context.Context) (RecategorizeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Recategorize")
	defer span.End()

	categories, err := s.categoryRepo.ListAgeCategories(ctx)
	if err != nil {
		return RecategorizeResult{}, errors.Wrap(err, "list age categories")
	}
	players, err := s.repo.List(ctx, player.Filter{})
	if err != nil {
		return RecategorizeResult{}, errors.Wrap(err, "list players")
	}

	result := RecategorizeResult{
		Scanned:     len(players),
		WorkerCount: min(s.workers, max(len(players), 1)),
	}
	if len(players) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(result.WorkerCount)
	if err != nil {
		return RecategorizeResult{}, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	today := s.now().UTC()
	var updated, failed atomic.Int32
	var workers sync.WaitGroup
	for _, item := range players {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if !item.Categorize(today, categories) {
				return
			}
			if err := s.repo.UpdateAgeCategory(ctx, item.ID, item.AgeCategoryID); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "recategorize player failed", "player_id", item.ID, "error", err)
				return
			}
			updated.Add(1)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return RecategorizeResult{}, errors.Wrap(err, "submit task to worker pool")
		}
	}
	workers.Wait()

	result.Updated = int(updated.Load())
	result.Failed = int(failed.Load())
	s.logger.InfoContext(ctx, "players recategorized",
		"scanned", result.Scanned,
		"updated", result.Updated,
		"failed", result.Failed,
	)
	return result, nil
}
