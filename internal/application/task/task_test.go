package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maksim-Borisov7/TaskApp/internal/domain"
	domerrors "github.com/Maksim-Borisov7/TaskApp/internal/domain/errors"
)

type fakeTaskRepo struct {
	tasks  []*domain.Task
	nextID int64
}

func (f *fakeTaskRepo) Create(_ context.Context, userID int64, title, description string) (*domain.Task, error) {
	f.nextID++
	t := &domain.Task{
		ID:          f.nextID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
		UserID:      userID,
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeTaskRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, userID, taskID int64) (*domain.Task, error) {
	for _, t := range f.tasks {
		if t.UserID == userID && t.ID == taskID {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskRepo) SetDone(_ context.Context, userID, taskID int64, done bool) error {
	for _, t := range f.tasks {
		if t.UserID == userID && t.ID == taskID {
			t.Done = done
		}
	}
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, userID, taskID int64) error {
	for i, t := range f.tasks {
		if t.UserID == userID && t.ID == taskID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestToggle_FlipsBothWays(t *testing.T) {
	repo := &fakeTaskRepo{}
	created, err := repo.Create(context.Background(), 1, "buy milk", "")
	require.NoError(t, err)

	uc := NewToggle(repo)

	result, err := uc.Execute(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.True(t, result.Done)

	result, err = uc.Execute(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.False(t, result.Done)
}

func TestToggle_MissingTask(t *testing.T) {
	uc := NewToggle(&fakeTaskRepo{})
	_, err := uc.Execute(context.Background(), 1, 999)
	require.ErrorIs(t, err, domerrors.ErrTaskNotFound)
}

func TestToggle_ForeignTaskLooksMissing(t *testing.T) {
	repo := &fakeTaskRepo{}
	created, err := repo.Create(context.Background(), 2, "not yours", "")
	require.NoError(t, err)

	uc := NewToggle(repo)
	_, err = uc.Execute(context.Background(), 1, created.ID)
	require.ErrorIs(t, err, domerrors.ErrTaskNotFound)
}

func TestDelete_RemovesOwnedTask(t *testing.T) {
	repo := &fakeTaskRepo{}
	created, err := repo.Create(context.Background(), 1, "temp", "")
	require.NoError(t, err)

	uc := NewDelete(repo)
	require.NoError(t, uc.Execute(context.Background(), 1, created.ID))

	remaining, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	require.ErrorIs(t, uc.Execute(context.Background(), 1, created.ID), domerrors.ErrTaskNotFound)
}

func TestList_OnlyOwnTasks(t *testing.T) {
	repo := &fakeTaskRepo{}
	_, err := repo.Create(context.Background(), 1, "mine", "")
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), 2, "theirs", "")
	require.NoError(t, err)

	uc := NewList(repo)
	tasks, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "mine", tasks[0].Title)
}
