package sqlite

// Task is a row of the todos table. The text lives in the "task" column.
type Task struct {
	ID   int64
	Text string
}
