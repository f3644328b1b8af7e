package domain

// Team is a retro team as served by the catalog routes.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Actions []string `json:"actions"`
	Creator string   `json:"creator"`
	Admins  []string `json:"admins"`
	Boards  []string `json:"boards"`
}

// Member is the public profile of a team member.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
