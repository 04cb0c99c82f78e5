package app

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/club-manager/internal/config"
	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
	"github.com/riskibarqy/club-manager/internal/infrastructure/auth"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/club-manager/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/club-manager/internal/platform/cache"
	idgen "github.com/riskibarqy/club-manager/internal/platform/id"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/riskibarqy/club-manager/internal/platform/password"
	"github.com/riskibarqy/club-manager/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type repositories struct {
	categories   category.Repository
	seasons      season.Repository
	competitions competition.Repository
	teams        team.Repository
	players      player.Repository
	matches      match.Repository
	honors       honors.Repository
	accounts     account.Repository
}

// NewHTTPServer wires the storage, services and router described by cfg.
// The returned cleanup releases the database pool and is safe to call when
// NewHTTPServer fails.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	cleanup := func() {}

	if cfg.HTTPAddr == "" {
		return nil, cleanup, errors.New("http server addr cannot be empty")
	}

	now := time.Now()
	var repos repositories
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() {
			if err := db.Close(); err != nil {
				logger.Warn("close database failed", "error", err)
			}
		}
		if err := db.PingContext(ctx); err != nil {
			return nil, cleanup, errors.Wrap(err, "ping database")
		}
		if cfg.SeedEnabled {
			if err := postgres.BootstrapSeed(ctx, db, now); err != nil {
				return nil, cleanup, errors.Wrap(err, "bootstrap seed")
			}
		}
		repos = postgresRepositories(db)
		logger.Info("using postgres store", "db_name", dbNameFromURL(cfg.DBURL))
	default:
		store := memory.NewStore()
		if cfg.SeedEnabled {
			memory.Seed(store, now)
		}
		repos = memoryRepositories(store)
		logger.Info("using in-memory store", "seeded", cfg.SeedEnabled)
	}

	if cfg.CacheEnabled {
		catalog := basecache.NewStore(cfg.CacheTTL)
		repos.categories = cache.NewCategoryRepository(repos.categories, catalog)
		repos.seasons = cache.NewSeasonRepository(repos.seasons, catalog)
		repos.competitions = cache.NewCompetitionRepository(repos.competitions, catalog)
		repos.teams = cache.NewTeamRepository(repos.teams, catalog)
	}

	tokens, err := auth.NewJWTCodec(cfg.AuthTokenSecret, cfg.AuthTokenIssuer)
	if err != nil {
		return nil, cleanup, errors.Wrap(err, "build token codec")
	}

	accountSvc := usecase.NewAccountService(
		repos.accounts,
		repos.categories,
		password.NewBcryptHasher(cfg.AuthBcryptCost),
		tokens,
		idgen.NewRandomGenerator("ses_"),
		cfg.AuthTokenTTL,
		logger.Named("accounts"),
	)
	if cfg.SeedAdminEmail != "" {
		admin, err := accountSvc.EnsureAdmin(ctx, usecase.AdminSeed{
			Email:    cfg.SeedAdminEmail,
			Password: cfg.SeedAdminPassword,
		})
		if err != nil {
			return nil, cleanup, errors.Wrap(err, "seed admin account")
		}
		logger.Info("admin account ready", "account_id", admin.ID)
	}

	handler := httpapi.NewHandler(
		usecase.NewReportService(
			repos.matches,
			repos.honors,
			repos.categories,
			repos.seasons,
			repos.competitions,
			repos.teams,
			usecase.ReportConfig{MatchPageSize: cfg.MatchPageSize, HonorsPageSize: cfg.HonorsPageSize},
		),
		usecase.NewCategoryService(repos.categories),
		usecase.NewSeasonService(repos.seasons),
		usecase.NewCompetitionService(repos.competitions, repos.categories),
		usecase.NewTeamService(repos.teams, repos.categories),
		usecase.NewPlayerService(repos.players, repos.categories, cfg.RecategorizeWorkers, logger.Named("players")),
		usecase.NewMatchService(repos.matches, repos.competitions, repos.seasons, repos.teams, cfg.MatchPageSize),
		usecase.NewHonorsService(repos.honors, repos.categories, cfg.HonorsPageSize),
		accountSvc,
		usecase.NewDashboardService(repos.players, repos.categories, repos.matches, repos.competitions, repos.seasons, repos.teams),
		usecase.NewContactService(logger.Named("contact")),
		logger,
	)

	router := httpapi.NewRouter(
		handler,
		accountSvc,
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
		httpapi.NewIPRateLimiter(cfg.LoginRateLimitPerMinute, cfg.LoginRateLimitBurst),
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return server, cleanup, nil
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.ServiceName), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return db, nil
}

func memoryRepositories(store *memory.Store) repositories {
	return repositories{
		categories:   memory.NewCategoryRepository(store),
		seasons:      memory.NewSeasonRepository(store),
		competitions: memory.NewCompetitionRepository(store),
		teams:        memory.NewTeamRepository(store),
		players:      memory.NewPlayerRepository(store),
		matches:      memory.NewMatchRepository(store),
		honors:       memory.NewHonorsRepository(store),
		accounts:     memory.NewAccountRepository(store),
	}
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		categories:   postgres.NewCategoryRepository(db),
		seasons:      postgres.NewSeasonRepository(db),
		competitions: postgres.NewCompetitionRepository(db),
		teams:        postgres.NewTeamRepository(db),
		players:      postgres.NewPlayerRepository(db),
		matches:      postgres.NewMatchRepository(db),
		honors:       postgres.NewHonorsRepository(db),
		accounts:     postgres.NewAccountRepository(db),
	}
}
