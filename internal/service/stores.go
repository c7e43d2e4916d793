package service

import (
	"context"

	"github.com/google/uuid"

	"taskhub/internal/model"
	"taskhub/internal/repository"
)

// TaskStore is the persistence surface the services need for tasks.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetVisibleByID(ctx context.Context, id, userID uuid.UUID) (*model.Task, error)
	ListVisible(ctx context.Context, userID uuid.UUID, opts repository.TaskListOptions) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddParticipant(ctx context.Context, taskID, userID uuid.UUID) error
	RemoveParticipant(ctx context.Context, taskID, userID uuid.UUID) error
	AddLabel(ctx context.Context, taskID, labelID uuid.UUID) error
	RemoveLabel(ctx context.Context, taskID, labelID uuid.UUID) error
}

// UserStore is the persistence surface the services need for users.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// LabelStore is the persistence surface the services need for labels.
type LabelStore interface {
	Create(ctx context.Context, label *model.Label) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error)
	GetByName(ctx context.Context, name string) (*model.Label, error)
	List(ctx context.Context, skip, limit int) ([]model.Label, error)
	Update(ctx context.Context, label *model.Label) error
	Delete(ctx context.Context, id uuid.UUID) error
	UsageCounts(ctx context.Context) ([]repository.LabelUsage, error)
}

var (
	_ TaskStore  = (*repository.TaskRepository)(nil)
	_ UserStore  = (*repository.UserRepository)(nil)
	_ LabelStore = (*repository.LabelRepository)(nil)
)
