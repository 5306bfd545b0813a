package task

import (
	"context"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/ports"
	domerrors "github.com/Maksim-Borisov7/TaskApp/internal/domain/errors"
)

type ToggleResult struct {
	TaskID int64
	Done   bool
}

// Toggle flips a task's done flag. The lookup is scoped by owner, so a task
// id belonging to another user reports ErrTaskNotFound.
type Toggle struct {
	tasks ports.TaskRepository
}

func NewToggle(tasks ports.TaskRepository) *Toggle {
	return &Toggle{tasks: tasks}
}

func (uc *Toggle) Execute(ctx context.Context, userID, taskID int64) (*ToggleResult, error) {
	t, err := uc.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domerrors.ErrTaskNotFound
	}
	next := !t.Done
	if err := uc.tasks.SetDone(ctx, userID, taskID, next); err != nil {
		return nil, err
	}
	return &ToggleResult{TaskID: taskID, Done: next}, nil
}
