package domain

// Task represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID   int64
	Text string
}

// NewTask creates a new Task with the given text.
func NewTask(text string) Task {
	return Task{
		Text: text,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Text != ""
}

// IsPersisted reports whether the task has been assigned an id by storage.
func (t Task) IsPersisted() bool {
	return t.ID > 0
}

// String returns the task text for display purposes.
func (t Task) String() string {
	return t.Text
}
