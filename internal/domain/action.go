package domain

// ActionStatus is the lifecycle state of a retro action.
type ActionStatus string

const (
	ActionToDo       ActionStatus = "TO_DO"
	ActionInProgress ActionStatus = "IN_PROGRESS"
	ActionComplete   ActionStatus = "COMPLETE"
)

// Action is a follow-up item agreed during a retro.
type Action struct {
	ID       string       `json:"id"`
	Author   string       `json:"author"`
	Status   ActionStatus `json:"status"`
	Assignee string       `json:"assignee"`
	Content  string       `json:"content"`
}
