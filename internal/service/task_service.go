package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/model"
	"taskhub/internal/repository"
)

// CreateTaskInput describes a task creation request. Status defaults to TODO
// and Labels are resolved by name after the task row is committed.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      model.TaskStatus
	Progress    *int
	DueDate     *time.Time
	Labels      []string
}

// TaskService owns the task workflow rules: status/progress reconciliation,
// the owner/participant visibility guard and participant management.
type TaskService struct {
	tasks  TaskStore
	users  UserStore
	labels *LabelService
}

func NewTaskService(tasks TaskStore, users UserStore, labels *LabelService) *TaskService {
	return &TaskService{tasks: tasks, users: users, labels: labels}
}

// Create inserts a new task for the owner and attaches the requested labels.
// Labels are attached after the task commit; a crash between the two steps
// leaves the task without its labels.
func (s *TaskService) Create(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*model.Task, error) {
	status := input.Status
	if status == "" {
		status = model.StatusTodo
	}

	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Progress:    progressForStatus(status, input.Progress, 0),
		IsActive:    true,
		DueDate:     input.DueDate,
		OwnerID:     ownerID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	for _, name := range input.Labels {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		label, err := s.labels.resolveByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := s.tasks.AddLabel(ctx, task.ID, label.ID); err != nil {
			return nil, err
		}
	}

	return s.tasks.GetVisibleByID(ctx, task.ID, ownerID)
}

// Get retrieves a task visible to the actor
func (s *TaskService) Get(ctx context.Context, taskID, actorID uuid.UUID) (*model.Task, error) {
	return s.tasks.GetVisibleByID(ctx, taskID, actorID)
}

// List retrieves tasks visible to the actor, filtered and paginated
func (s *TaskService) List(ctx context.Context, actorID uuid.UUID, opts repository.TaskListOptions) ([]model.Task, error) {
	return s.tasks.ListVisible(ctx, actorID, opts)
}

// Update applies a partial update to a task visible to the actor, keeping
// status and progress consistent.
func (s *TaskService) Update(ctx context.Context, taskID, actorID uuid.UUID, patch TaskPatch) (*model.Task, error) {
	task, err := s.tasks.GetVisibleByID(ctx, taskID, actorID)
	if err != nil {
		return nil, err
	}

	applyPatch(task, patch)

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task. Owner-only.
func (s *TaskService) Delete(ctx context.Context, taskID, actorID uuid.UUID) error {
	task, err := s.tasks.GetVisibleByID(ctx, taskID, actorID)
	if err != nil {
		return err
	}
	if task.OwnerID != actorID {
		return ErrNotTaskOwner
	}
	return s.tasks.Delete(ctx, task.ID)
}

// SetActive flips the soft-delete flag. Owner-only.
func (s *TaskService) SetActive(ctx context.Context, taskID, actorID uuid.UUID, active bool) (*model.Task, error) {
	task, err := s.tasks.GetVisibleByID(ctx, taskID, actorID)
	if err != nil {
		return nil, err
	}
	if task.OwnerID != actorID {
		return nil, ErrNotTaskOwner
	}

	task.IsActive = active
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// AddParticipant invites the user with the given email to the task.
// Owner-only; the owner themselves and existing participants are rejected.
func (s *TaskService) AddParticipant(ctx context.Context, taskID, actorID uuid.UUID, email string) (*model.Task, error) {
	task, err := s.tasks.GetVisibleByID(ctx, taskID, actorID)
	if err != nil {
		return nil, err
	}
	if task.OwnerID != actorID {
		return nil, ErrNotTaskOwner
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.ID == task.OwnerID {
		return nil, ErrOwnerParticipant
	}
	for _, p := range task.Participants {
		if p.ID == user.ID {
			return nil, ErrAlreadyParticipant
		}
	}

	if err := s.tasks.AddParticipant(ctx, task.ID, user.ID); err != nil {
		// Lost a race with a concurrent invite for the same user
		if errors.Is(err, repository.ErrDuplicateParticipant) {
			return nil, ErrAlreadyParticipant
		}
		return nil, err
	}

	return s.tasks.GetVisibleByID(ctx, task.ID, actorID)
}

// RemoveParticipant removes a participant from the task. Owner-only.
func (s *TaskService) RemoveParticipant(ctx context.Context, taskID, actorID, participantID uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.GetVisibleByID(ctx, taskID, actorID)
	if err != nil {
		return nil, err
	}
	if task.OwnerID != actorID {
		return nil, ErrNotTaskOwner
	}

	isParticipant := false
	for _, p := range task.Participants {
		if p.ID == participantID {
			isParticipant = true
			break
		}
	}
	if !isParticipant {
		return nil, ErrNotAParticipant
	}

	if err := s.tasks.RemoveParticipant(ctx, task.ID, participantID); err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return nil, ErrNotAParticipant
		}
		return nil, err
	}

	return s.tasks.GetVisibleByID(ctx, task.ID, actorID)
}
