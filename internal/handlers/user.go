package handlers

import (
	"net/http"

	"github.com/dnimmo/bestretro/internal/user"
	"github.com/go-chi/chi/v5"
)

// UserHandler serves the user record.
type UserHandler struct {
	users user.Provider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(p user.Provider) *UserHandler {
	return &UserHandler{users: p}
}

// Routes registers user routes on the given chi router.
func (h *UserHandler) Routes(r chi.Router) {
	r.Get("/", h.GetUser)
}

// GetUser returns the user record.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.users.User())
}
