package task

import (
	"context"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/ports"
	domerrors "github.com/Maksim-Borisov7/TaskApp/internal/domain/errors"
)

// Delete removes a task owned by the user.
type Delete struct {
	tasks ports.TaskRepository
}

func NewDelete(tasks ports.TaskRepository) *Delete {
	return &Delete{tasks: tasks}
}

func (uc *Delete) Execute(ctx context.Context, userID, taskID int64) error {
	t, err := uc.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return err
	}
	if t == nil {
		return domerrors.ErrTaskNotFound
	}
	return uc.tasks.Delete(ctx, userID, taskID)
}
