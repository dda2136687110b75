package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-cache/internal/platform/id"
	"github.com/riskibarqy/football-cache/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, swaggerEnabled bool, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, swaggerEnabled)
	registerLeagueRoutes(mux, handler)
	registerTeamRoutes(mux, handler)
	registerFixtureRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, id.NewRandomGenerator(8), CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
