package catalog

import "github.com/dnimmo/bestretro/internal/domain"

const (
	nimmoID = "1"
	abiID   = "802c1953-3358-48b3-bf51-550520b715af"
	neilID  = "0e596f7d-fe22-4d97-baf3-f5c508702066"
	danteID = "0e596f7d-fe22-4d97-baf3-f5c508702067"
)

// DevTeams are the development teams. Their ids match the teams on the
// default user record.
var DevTeams = []domain.Team{
	{
		ID:      "1",
		Name:    "BR Dev Team 1",
		Members: []string{nimmoID, abiID, neilID, danteID},
		Actions: []string{
			"0e596f7d-fe22-4d97-baf3-f5c508702066",
			"802c1953-3358-48b3-bf51-550520b715a2",
			"802c1953-3358-48b3-bf51-550520b715a3",
			"802c1953-3358-48b3-bf51-550520b715a1",
		},
		Creator: nimmoID,
		Admins:  []string{nimmoID},
		Boards:  []string{},
	},
	{
		ID:      "2",
		Name:    "BR Dev Team 2",
		Members: []string{nimmoID},
		Actions: []string{},
		Creator: nimmoID,
		Admins:  []string{nimmoID},
		Boards:  []string{},
	},
}

var DevMembers = []domain.Member{
	{ID: nimmoID, Name: "Nimmo", Email: "dnimmo@gmail.com"},
	{ID: abiID, Name: "Abi", Email: "abi@abimail.com"},
	{ID: neilID, Name: "Neil", Email: "neil@kovertsmail.com"},
	{ID: danteID, Name: "Dante", Email: "dante@catmail.com"},
}

var DevActions = []domain.Action{
	{
		ID:       "0e596f7d-fe22-4d97-baf3-f5c508702066",
		Author:   nimmoID,
		Status:   domain.ActionToDo,
		Assignee: "Nimmo",
		Content:  "Do a thing",
	},
	{
		ID:       "802c1953-3358-48b3-bf51-550520b715a2",
		Author:   nimmoID,
		Status:   domain.ActionInProgress,
		Assignee: "Abi",
		Content:  "Do another thing",
	},
	{
		ID:       "802c1953-3358-48b3-bf51-550520b715a3",
		Author:   nimmoID,
		Status:   domain.ActionComplete,
		Assignee: "Abi",
		Content:  "Be awesome",
	},
	{
		ID:       "802c1953-3358-48b3-bf51-550520b715a1",
		Author:   nimmoID,
		Status:   domain.ActionComplete,
		Assignee: "Neil",
		Content:  "Be awesome",
	},
}

// Dev returns a catalog loaded with the development fixtures.
func Dev() *Catalog {
	return New(DevTeams, DevMembers, DevActions)
}
