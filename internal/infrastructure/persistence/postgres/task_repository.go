package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/ports"
	"github.com/Maksim-Borisov7/TaskApp/internal/domain"
)

const (
	insertTaskSQL = `INSERT INTO tasks (title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING task_id, title, COALESCE(description, ''), is_done, created_at, user_id`
	listTasksSQL = `SELECT task_id, title, COALESCE(description, ''), is_done, created_at, user_id
		FROM tasks WHERE user_id = $1 ORDER BY task_id`
	getTaskSQL = `SELECT task_id, title, COALESCE(description, ''), is_done, created_at, user_id
		FROM tasks WHERE user_id = $1 AND task_id = $2`
	setTaskDoneSQL = `UPDATE tasks SET is_done = $3 WHERE user_id = $1 AND task_id = $2`
	deleteTaskSQL  = `DELETE FROM tasks WHERE user_id = $1 AND task_id = $2`
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, userID int64, title, description string) (*domain.Task, error) {
	var desc interface{}
	if description != "" {
		desc = description
	}
	row := r.pool.QueryRow(ctx, insertTaskSQL, title, desc, userID)
	return scanTask(row)
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	rows, err := r.pool.Query(ctx, listTasksSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	t, err := scanTask(r.pool.QueryRow(ctx, getTaskSQL, userID, taskID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

func (r *TaskRepository) SetDone(ctx context.Context, userID, taskID int64, done bool) error {
	_, err := r.pool.Exec(ctx, setTaskDoneSQL, userID, taskID, done)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID int64) error {
	_, err := r.pool.Exec(ctx, deleteTaskSQL, userID, taskID)
	return err
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Done, &t.CreatedAt, &t.UserID); err != nil {
		return nil, err
	}
	return &t, nil
}

// Ensure TaskRepository implements ports.TaskRepository.
var _ ports.TaskRepository = (*TaskRepository)(nil)
