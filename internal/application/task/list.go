package task

import (
	"context"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/ports"
	"github.com/Maksim-Borisov7/TaskApp/internal/domain"
)

// List returns all tasks owned by a user.
type List struct {
	tasks ports.TaskRepository
}

func NewList(tasks ports.TaskRepository) *List {
	return &List{tasks: tasks}
}

func (uc *List) Execute(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return uc.tasks.ListByUser(ctx, userID)
}
