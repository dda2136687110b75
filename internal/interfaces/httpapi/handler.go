package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-cache/internal/platform/logging"
	"github.com/riskibarqy/football-cache/internal/usecase"
)

type Services struct {
	Leagues   *usecase.LeagueService
	Teams     *usecase.TeamService
	Players   *usecase.PlayerService
	Fixtures  *usecase.FixtureService
	Standings *usecase.StandingService
	H2H       *usecase.H2HService
	Matches   *usecase.MatchService
}

type Handler struct {
	services  Services
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		services:  services,
		logger:    logger,
		validator: validator.New(),
	}
}

type seasonPath struct {
	League string `validate:"required,max=64"`
	Season int    `validate:"omitempty,gte=1900"`
}

type teamSeasonPath struct {
	seasonPath
	TeamID int64 `validate:"gt=0"`
}

type roundPath struct {
	seasonPath
	Round int `validate:"gt=0"`
}

type idPath struct {
	ID int64 `validate:"gt=0"`
}

type pairPath struct {
	TeamID      int64 `validate:"gt=0"`
	OtherTeamID int64 `validate:"gt=0,nefield=TeamID"`
}

type playerSeasonPath struct {
	PlayerID int64 `validate:"gt=0"`
	Season   int   `validate:"gte=1900"`
}

type datePath struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

// pathSeason returns 0 when the route has no {season} segment.
func pathSeason(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("season"))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: season must be an integer", usecase.ErrInvalidInput)
	}
	return v, nil
}

func (h *Handler) parseSeasonPath(r *http.Request) (seasonPath, error) {
	season, err := pathSeason(r)
	if err != nil {
		return seasonPath{}, err
	}
	p := seasonPath{League: strings.TrimSpace(r.PathValue("league")), Season: season}
	return p, h.validateRequest(r.Context(), p)
}

func (h *Handler) parseID(r *http.Request, name string) (int64, error) {
	id, err := pathInt64(r, name)
	if err != nil {
		return 0, err
	}
	if err := h.validateRequest(r.Context(), idPath{ID: id}); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return id, nil
}

// fail logs at warn for caller errors and at error for everything else.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, kv ...any) {
	kv = append(kv, "error", err)
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, kv...)
	} else {
		h.logger.WarnContext(ctx, msg, kv...)
	}
	writeError(ctx, w, err)
}
