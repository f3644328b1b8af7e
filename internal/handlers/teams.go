package handlers

import (
	"errors"
	"net/http"

	"github.com/dnimmo/bestretro/internal/catalog"
	"github.com/dnimmo/bestretro/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TeamsHandler provides read-only team, member and action endpoints.
type TeamsHandler struct {
	catalog *catalog.Catalog
	log     *zap.SugaredLogger
}

// NewTeamsHandler creates a new TeamsHandler.
func NewTeamsHandler(c *catalog.Catalog, log *zap.SugaredLogger) *TeamsHandler {
	return &TeamsHandler{catalog: c, log: log}
}

// Routes registers team routes on the given chi router.
func (h *TeamsHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{teamID}", h.Get)
	r.Get("/{teamID}/members", h.Members)
	r.Get("/{teamID}/actions", h.Actions)
}

// List returns all teams.
func (h *TeamsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Teams())
}

// Get returns a single team.
func (h *TeamsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")
	team, err := h.catalog.Team(id)
	if err != nil {
		h.fail(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

// Members returns the member profiles of a team.
func (h *TeamsHandler) Members(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")
	members, err := h.catalog.Members(id)
	if err != nil {
		h.fail(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

// Actions returns the retro actions recorded against a team.
func (h *TeamsHandler) Actions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")
	actions, err := h.catalog.Actions(id)
	if err != nil {
		h.fail(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, actions)
}

func (h *TeamsHandler) fail(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, domain.ErrTeamNotFound) {
		writeError(w, http.StatusNotFound, "team "+id+" not found")
		return
	}
	h.log.Errorw("catalog lookup failed", "team_id", id, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
