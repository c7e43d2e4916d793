package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"

	"taskhub/internal/model"
	"taskhub/internal/repository"
)

// LabelService resolves labels by name, creating them on first use, and
// manages the task↔label association.
type LabelService struct {
	labels LabelStore
	tasks  TaskStore
}

func NewLabelService(labels LabelStore, tasks TaskStore) *LabelService {
	return &LabelService{labels: labels, tasks: tasks}
}

// resolveByName returns the label with the given name, creating it with a
// palette color when absent. Losing the creation race to a concurrent
// request is not an error: the winner's row is fetched and used.
func (s *LabelService) resolveByName(ctx context.Context, name string) (*model.Label, error) {
	label, err := s.labels.GetByName(ctx, name)
	if err == nil {
		return label, nil
	}
	if !errors.Is(err, repository.ErrLabelNotFound) {
		return nil, err
	}

	label = &model.Label{
		Name:  name,
		Color: model.LightPalette[rand.Intn(len(model.LightPalette))],
	}
	err = s.labels.Create(ctx, label)
	if errors.Is(err, repository.ErrDuplicateLabelName) {
		return s.labels.GetByName(ctx, name)
	}
	if err != nil {
		return nil, err
	}
	return label, nil
}

// AddToTask resolves the named label and attaches it to a task visible to
// the actor. Attaching an already-attached label is a no-op.
func (s *LabelService) AddToTask(ctx context.Context, taskID, actorID uuid.UUID, labelName string) (*model.Task, error) {
	task, err := s.tasks.GetVisibleByID(ctx, taskID, actorID)
	if err != nil {
		return nil, err
	}

	label, err := s.resolveByName(ctx, labelName)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.AddLabel(ctx, task.ID, label.ID); err != nil {
		return nil, err
	}

	return s.tasks.GetVisibleByID(ctx, task.ID, actorID)
}

// RemoveFromTask detaches a label from a task visible to the actor. The task
// and the label must exist; a missing edge is removed silently.
func (s *LabelService) RemoveFromTask(ctx context.Context, taskID, actorID, labelID uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.GetVisibleByID(ctx, taskID, actorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.labels.GetByID(ctx, labelID); err != nil {
		return nil, err
	}

	if err := s.tasks.RemoveLabel(ctx, task.ID, labelID); err != nil {
		return nil, err
	}

	return s.tasks.GetVisibleByID(ctx, task.ID, actorID)
}

// Create adds a label with an explicit color
func (s *LabelService) Create(ctx context.Context, name, color string) (*model.Label, error) {
	label := &model.Label{Name: name, Color: color}
	if err := s.labels.Create(ctx, label); err != nil {
		return nil, err
	}
	return label, nil
}

// Get retrieves a label by ID
func (s *LabelService) Get(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	return s.labels.GetByID(ctx, id)
}

// List retrieves labels with offset/limit pagination
func (s *LabelService) List(ctx context.Context, skip, limit int) ([]model.Label, error) {
	return s.labels.List(ctx, skip, limit)
}

// Update renames and/or recolors a label
func (s *LabelService) Update(ctx context.Context, id uuid.UUID, name, color string) (*model.Label, error) {
	label, err := s.labels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	label.Name = name
	label.Color = color
	if err := s.labels.Update(ctx, label); err != nil {
		return nil, err
	}
	return label, nil
}

// Delete removes a label everywhere, including its task edges
func (s *LabelService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.labels.Delete(ctx, id)
}

// WithUsageCounts lists every label with the number of tasks carrying it
func (s *LabelService) WithUsageCounts(ctx context.Context) ([]repository.LabelUsage, error) {
	return s.labels.UsageCounts(ctx)
}
