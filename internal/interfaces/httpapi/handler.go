package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

const (
	dateLayout     = "2006-01-02"
	maxRequestBody = 1 << 20
)

type Handler struct {
	reportService      *usecase.ReportService
	categoryService    *usecase.CategoryService
	seasonService      *usecase.SeasonService
	competitionService *usecase.CompetitionService
	teamService        *usecase.TeamService
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	honorsService      *usecase.HonorsService
	accountService     *usecase.AccountService
	dashboardService   *usecase.DashboardService
	contactService     *usecase.ContactService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	reportService *usecase.ReportService,
	categoryService *usecase.CategoryService,
	seasonService *usecase.SeasonService,
	competitionService *usecase.CompetitionService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	honorsService *usecase.HonorsService,
	accountService *usecase.AccountService,
	dashboardService *usecase.DashboardService,
	contactService *usecase.ContactService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		reportService:      reportService,
		categoryService:    categoryService,
		seasonService:      seasonService,
		competitionService: competitionService,
		teamService:        teamService,
		playerService:      playerService,
		matchService:       matchService,
		honorsService:      honorsService,
		accountService:     accountService,
		dashboardService:   dashboardService,
		contactService:     contactService,
		logger:             logger.Named("httpapi"),
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return errors.Newf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest strictly decodes the JSON body into dst and validates it.
func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.Newf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

// logFailure logs client errors at warn level and everything else at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Newf("%w: invalid %s %q", usecase.ErrNotFound, name, raw)
	}
	return id, nil
}

// queryID reads an optional positive id filter. An empty value means no filter.
func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Newf("%w: invalid %s filter %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// queryPage reads the page number; anything non-numeric falls back to 1.
func queryPage(r *http.Request) int {
	page, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("page")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func queryYear(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return 0, errors.Newf("%w: invalid year filter %q", usecase.ErrInvalidInput, raw)
	}
	return year, nil
}

func querySearch(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("q"))
}

func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, errors.Newf("%w: %s must be a YYYY-MM-DD date", usecase.ErrInvalidInput, field)
	}
	return t, nil
}

func parseTimestamp(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.Newf("%w: %s must be an RFC 3339 timestamp", usecase.ErrInvalidInput, field)
	}
	return t, nil
}
