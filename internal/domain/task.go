package domain

import "time"

// Task belongs to exactly one user. Description may be empty.
type Task struct {
	ID          int64
	Title       string
	Description string
	Done        bool
	CreatedAt   time.Time
	UserID      int64
}
