package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/internal/model"
)

// visibleTasks restricts a query to tasks the user owns or participates in.
const visibleTasks = "tasks.owner_id = ? OR EXISTS (SELECT 1 FROM task_participants tp WHERE tp.task_id = tasks.id AND tp.user_id = ?)"

// TaskListOptions narrows a visible-task listing.
type TaskListOptions struct {
	Skip            int
	Limit           int
	Status          *model.TaskStatus
	IncludeInactive bool
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetVisibleByID retrieves a task by ID, applying the visibility filter.
// A task the user cannot see is reported as not found.
func (r *TaskRepository) GetVisibleByID(ctx context.Context, id, userID uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).
		Preload("Labels").
		Preload("Participants").
		Where("tasks.id = ?", id).
		Where(visibleTasks, userID, userID).
		First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// ListVisible retrieves tasks visible to the user, filtered and paginated
func (r *TaskRepository) ListVisible(ctx context.Context, userID uuid.UUID, opts TaskListOptions) ([]model.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("Labels").
		Where(visibleTasks, userID, userID)

	if opts.Status != nil {
		query = query.Where("tasks.status = ?", *opts.Status)
	}
	if !opts.IncludeInactive {
		query = query.Where("tasks.is_active = ?", true)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var tasks []model.Task
	result := query.Offset(opts.Skip).Order("tasks.created_at").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Update updates an existing task
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Select("Labels", "Participants").Delete(&model.Task{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// AddParticipant appends a user to the task's participant set.
// The check and insert run in one transaction to guard against races.
func (r *TaskRepository) AddParticipant(ctx context.Context, taskID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("task_participants").
			Where("task_id = ? AND user_id = ?", taskID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateParticipant
		}
		return tx.Exec(
			"INSERT INTO task_participants (task_id, user_id) VALUES (?, ?)",
			taskID, userID,
		).Error
	})
}

// RemoveParticipant removes a user from the task's participant set
func (r *TaskRepository) RemoveParticipant(ctx context.Context, taskID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(
		"DELETE FROM task_participants WHERE task_id = ? AND user_id = ?",
		taskID, userID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}
	return nil
}

// AddLabel adds a label to a task
func (r *TaskRepository) AddLabel(ctx context.Context, taskID, labelID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO task_labels (task_id, label_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		taskID, labelID,
	).Error
}

// RemoveLabel removes a label from a task. Removing an absent edge is a no-op.
func (r *TaskRepository) RemoveLabel(ctx context.Context, taskID, labelID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM task_labels WHERE task_id = ? AND label_id = ?",
		taskID, labelID,
	).Error
}
