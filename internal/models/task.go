package models

// Priority classifies how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single tracked item. UserId holds the owner's email; tasks are
// stored as one list per owner and never move between owners.
type Task struct {
	Id        string   `json:"id"`
	UserId    string   `json:"userId"`
	Title     string   `json:"title"`
	Priority  Priority `json:"priority"`
	DueDate   string   `json:"dueDate"`
	Completed bool     `json:"completed"`
}
