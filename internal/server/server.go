package server

import (
	"net/http"

	"github.com/dnimmo/bestretro/internal/catalog"
	"github.com/dnimmo/bestretro/internal/handlers"
	"github.com/dnimmo/bestretro/internal/middleware"
	"github.com/dnimmo/bestretro/internal/user"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// New creates a fully-configured chi router with all route groups,
// middleware, and handlers wired together.
func New(log *zap.SugaredLogger, users user.Provider, teams *catalog.Catalog, metrics *middleware.Metrics) http.Handler {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	r.Use(middleware.CORS(middleware.DefaultCORSPolicy))
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(metrics.Middleware)
	r.Use(chimw.Recoverer)

	// ── Handlers ────────────────────────────────────────────
	userH := handlers.NewUserHandler(users)
	teamsH := handlers.NewTeamsHandler(teams, log)
	systemH := handlers.NewSystemHandler(metrics.Handler())

	// ── Routes ──────────────────────────────────────────────
	r.Route("/user", userH.Routes)
	r.Route("/teams", teamsH.Routes)
	systemH.Routes(r)

	return r
}
