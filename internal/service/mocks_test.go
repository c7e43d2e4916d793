package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taskhub/internal/model"
	"taskhub/internal/repository"
)

// Мок хранилища задач
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskStore) GetVisibleByID(ctx context.Context, id, userID uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id, userID)
	if task := args.Get(0); task != nil {
		return task.(*model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) ListVisible(ctx context.Context, userID uuid.UUID, opts repository.TaskListOptions) ([]model.Task, error) {
	args := m.Called(ctx, userID, opts)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskStore) AddParticipant(ctx context.Context, taskID, userID uuid.UUID) error {
	args := m.Called(ctx, taskID, userID)
	return args.Error(0)
}

func (m *MockTaskStore) RemoveParticipant(ctx context.Context, taskID, userID uuid.UUID) error {
	args := m.Called(ctx, taskID, userID)
	return args.Error(0)
}

func (m *MockTaskStore) AddLabel(ctx context.Context, taskID, labelID uuid.UUID) error {
	args := m.Called(ctx, taskID, labelID)
	return args.Error(0)
}

func (m *MockTaskStore) RemoveLabel(ctx context.Context, taskID, labelID uuid.UUID) error {
	args := m.Called(ctx, taskID, labelID)
	return args.Error(0)
}

// Мок хранилища пользователей
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// Мок хранилища меток
type MockLabelStore struct {
	mock.Mock
}

func (m *MockLabelStore) Create(ctx context.Context, label *model.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	args := m.Called(ctx, id)
	if label := args.Get(0); label != nil {
		return label.(*model.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLabelStore) GetByName(ctx context.Context, name string) (*model.Label, error) {
	args := m.Called(ctx, name)
	if label := args.Get(0); label != nil {
		return label.(*model.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLabelStore) List(ctx context.Context, skip, limit int) ([]model.Label, error) {
	args := m.Called(ctx, skip, limit)
	if labels := args.Get(0); labels != nil {
		return labels.([]model.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLabelStore) Update(ctx context.Context, label *model.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLabelStore) UsageCounts(ctx context.Context) ([]repository.LabelUsage, error) {
	args := m.Called(ctx)
	if usages := args.Get(0); usages != nil {
		return usages.([]repository.LabelUsage), args.Error(1)
	}
	return nil, args.Error(1)
}
