// Package catalog serves the read-only retro fixtures: teams, their members
// and their actions. A Catalog is built once and never written to, so all
// methods are safe for concurrent use without locking.
package catalog

import (
	"fmt"
	"slices"

	"github.com/dnimmo/bestretro/internal/domain"
)

// Catalog is an in-memory, read-only store of teams keyed by id.
type Catalog struct {
	order   []string
	teams   map[string]domain.Team
	members map[string]domain.Member
	actions map[string]domain.Action
}

// New indexes the given fixtures. Team member and action references that do
// not resolve are skipped when listing, not rejected here.
func New(teams []domain.Team, members []domain.Member, actions []domain.Action) *Catalog {
	c := &Catalog{
		order:   make([]string, 0, len(teams)),
		teams:   make(map[string]domain.Team, len(teams)),
		members: make(map[string]domain.Member, len(members)),
		actions: make(map[string]domain.Action, len(actions)),
	}
	for _, t := range teams {
		if _, dup := c.teams[t.ID]; !dup {
			c.order = append(c.order, t.ID)
		}
		c.teams[t.ID] = cloneTeam(t)
	}
	for _, m := range members {
		c.members[m.ID] = m
	}
	for _, a := range actions {
		c.actions[a.ID] = a
	}
	return c
}

// Teams returns every team in fixture order.
func (c *Catalog) Teams() []domain.Team {
	out := make([]domain.Team, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, cloneTeam(c.teams[id]))
	}
	return out
}

// Team returns a copy of the team with the given id.
func (c *Catalog) Team(id string) (domain.Team, error) {
	t, ok := c.teams[id]
	if !ok {
		return domain.Team{}, fmt.Errorf("team %s: %w", id, domain.ErrTeamNotFound)
	}
	return cloneTeam(t), nil
}

// Members resolves the member profiles of a team.
func (c *Catalog) Members(teamID string) ([]domain.Member, error) {
	t, ok := c.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("team %s: %w", teamID, domain.ErrTeamNotFound)
	}
	out := make([]domain.Member, 0, len(t.Members))
	for _, id := range t.Members {
		if m, ok := c.members[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// Actions resolves the actions recorded against a team.
func (c *Catalog) Actions(teamID string) ([]domain.Action, error) {
	t, ok := c.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("team %s: %w", teamID, domain.ErrTeamNotFound)
	}
	out := make([]domain.Action, 0, len(t.Actions))
	for _, id := range t.Actions {
		if a, ok := c.actions[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func cloneTeam(t domain.Team) domain.Team {
	cp := t
	cp.Members = cloneIDs(t.Members)
	cp.Actions = cloneIDs(t.Actions)
	cp.Admins = cloneIDs(t.Admins)
	cp.Boards = cloneIDs(t.Boards)
	return cp
}

// cloneIDs copies ids and turns nil into an empty slice so it encodes as [].
func cloneIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return slices.Clone(ids)
}
