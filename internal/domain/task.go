package domain

// Task is a checklist item. Subtasks share the same shape and are only
// one level deep in practice.
type Task struct {
	ID        string `json:"id"`
	TripID    string `json:"tripId"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Subtasks  []Task `json:"subtasks,omitempty"`
}

// EntityID implements Entity.
func (t Task) EntityID() string { return t.ID }

// TripKey implements TripScoped.
func (t Task) TripKey() string { return t.TripID }

// ToggleCompleted flips the completed flag.
func ToggleCompleted(t Task) Task {
	t.Completed = !t.Completed
	return t
}
