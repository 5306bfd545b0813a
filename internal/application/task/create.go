package task

import (
	"context"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/ports"
	"github.com/Maksim-Borisov7/TaskApp/internal/domain"
)

type CreateInput struct {
	Title       string
	Description string
}

// Create adds a new task owned by the given user.
type Create struct {
	tasks ports.TaskRepository
}

func NewCreate(tasks ports.TaskRepository) *Create {
	return &Create{tasks: tasks}
}

func (uc *Create) Execute(ctx context.Context, userID int64, input CreateInput) (*domain.Task, error) {
	return uc.tasks.Create(ctx, userID, input.Title, input.Description)
}
