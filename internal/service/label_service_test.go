package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taskhub/internal/model"
	"taskhub/internal/repository"
	"taskhub/internal/service"
)

func newLabelService() (*service.LabelService, *MockLabelStore, *MockTaskStore) {
	labels := new(MockLabelStore)
	tasks := new(MockTaskStore)
	return service.NewLabelService(labels, tasks), labels, tasks
}

func TestAddToTask_CreatesLabelWithPaletteColor(t *testing.T) {
	// Arrange
	svc, labels, tasks := newLabelService()
	actorID := uuid.New()
	taskID := uuid.New()
	labelID := uuid.New()
	stored := &model.Task{ID: taskID, OwnerID: actorID}

	tasks.On("GetVisibleByID", mock.Anything, taskID, actorID).Return(stored, nil)
	labels.On("GetByName", mock.Anything, "Urgent").Return(nil, repository.ErrLabelNotFound)

	var created *model.Label
	labels.On("Create", mock.Anything, mock.AnythingOfType("*model.Label")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Label)
			created.ID = labelID
		}).Return(nil)
	tasks.On("AddLabel", mock.Anything, taskID, labelID).Return(nil)

	// Act
	_, err := svc.AddToTask(context.Background(), taskID, actorID, "Urgent")

	// Assert: новая метка создана с цветом из палитры
	assert.NoError(t, err)
	assert.Equal(t, "Urgent", created.Name)
	assert.Contains(t, model.LightPalette, created.Color)
	labels.AssertExpectations(t)
	tasks.AssertExpectations(t)
}

func TestAddToTask_ReusesExistingLabel(t *testing.T) {
	svc, labels, tasks := newLabelService()
	actorID := uuid.New()
	taskID := uuid.New()
	existing := &model.Label{ID: uuid.New(), Name: "Work", Color: "#C8E6C9"}

	tasks.On("GetVisibleByID", mock.Anything, taskID, actorID).
		Return(&model.Task{ID: taskID, OwnerID: actorID}, nil)
	labels.On("GetByName", mock.Anything, "Work").Return(existing, nil)
	tasks.On("AddLabel", mock.Anything, taskID, existing.ID).Return(nil)

	_, err := svc.AddToTask(context.Background(), taskID, actorID, "Work")

	assert.NoError(t, err)
	labels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddToTask_LostCreationRaceUsesWinner(t *testing.T) {
	// Две гонки за создание одной метки: проигравший перечитывает строку победителя
	svc, labels, tasks := newLabelService()
	actorID := uuid.New()
	taskID := uuid.New()
	winner := &model.Label{ID: uuid.New(), Name: "Urgent", Color: "#FFECB3"}

	tasks.On("GetVisibleByID", mock.Anything, taskID, actorID).
		Return(&model.Task{ID: taskID, OwnerID: actorID}, nil)
	labels.On("GetByName", mock.Anything, "Urgent").Return(nil, repository.ErrLabelNotFound).Once()
	labels.On("Create", mock.Anything, mock.AnythingOfType("*model.Label")).
		Return(repository.ErrDuplicateLabelName)
	labels.On("GetByName", mock.Anything, "Urgent").Return(winner, nil).Once()
	tasks.On("AddLabel", mock.Anything, taskID, winner.ID).Return(nil)

	_, err := svc.AddToTask(context.Background(), taskID, actorID, "Urgent")

	assert.NoError(t, err)
	labels.AssertExpectations(t)
	tasks.AssertExpectations(t)
}

func TestAddToTask_InvisibleTaskIsNotFound(t *testing.T) {
	svc, labels, tasks := newLabelService()
	actorID := uuid.New()
	taskID := uuid.New()

	tasks.On("GetVisibleByID", mock.Anything, taskID, actorID).
		Return(nil, repository.ErrTaskNotFound)

	_, err := svc.AddToTask(context.Background(), taskID, actorID, "Urgent")

	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	labels.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestRemoveFromTask_MissingLabelIsNotFound(t *testing.T) {
	svc, labels, tasks := newLabelService()
	actorID := uuid.New()
	taskID := uuid.New()
	labelID := uuid.New()

	tasks.On("GetVisibleByID", mock.Anything, taskID, actorID).
		Return(&model.Task{ID: taskID, OwnerID: actorID}, nil)
	labels.On("GetByID", mock.Anything, labelID).Return(nil, repository.ErrLabelNotFound)

	_, err := svc.RemoveFromTask(context.Background(), taskID, actorID, labelID)

	assert.ErrorIs(t, err, repository.ErrLabelNotFound)
	tasks.AssertNotCalled(t, "RemoveLabel", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveFromTask_MissingEdgeIsSilent(t *testing.T) {
	// Снятие не прикрепленной метки не считается ошибкой
	svc, labels, tasks := newLabelService()
	actorID := uuid.New()
	taskID := uuid.New()
	label := &model.Label{ID: uuid.New(), Name: "Work", Color: "#C8E6C9"}
	stored := &model.Task{ID: taskID, OwnerID: actorID}

	tasks.On("GetVisibleByID", mock.Anything, taskID, actorID).Return(stored, nil)
	labels.On("GetByID", mock.Anything, label.ID).Return(label, nil)
	tasks.On("RemoveLabel", mock.Anything, taskID, label.ID).Return(nil)

	task, err := svc.RemoveFromTask(context.Background(), taskID, actorID, label.ID)

	assert.NoError(t, err)
	assert.Empty(t, task.Labels)
}

func TestUpdateLabel(t *testing.T) {
	svc, labels, _ := newLabelService()
	labelID := uuid.New()
	stored := &model.Label{ID: labelID, Name: "Old", Color: "#F5F5F5"}

	labels.On("GetByID", mock.Anything, labelID).Return(stored, nil)
	labels.On("Update", mock.Anything, stored).Return(nil)

	label, err := svc.Update(context.Background(), labelID, "New", "#FFCDD2")

	assert.NoError(t, err)
	assert.Equal(t, "New", label.Name)
	assert.Equal(t, "#FFCDD2", label.Color)
}

func TestCreateLabel_DuplicateNameIsConflict(t *testing.T) {
	svc, labels, _ := newLabelService()

	labels.On("Create", mock.Anything, mock.AnythingOfType("*model.Label")).
		Return(repository.ErrDuplicateLabelName)

	_, err := svc.Create(context.Background(), "Urgent", "#FFCDD2")

	assert.ErrorIs(t, err, repository.ErrDuplicateLabelName)
}
