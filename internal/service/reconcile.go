package service

import (
	"time"

	"taskhub/internal/model"
)

// TaskPatch carries the optional fields of a partial task update.
// A nil field means the caller did not supply it.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
	Progress    *int
	DueDate     *time.Time
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// progressForStatus returns the progress implied by a requested status.
// TODO and DONE pin progress to their endpoints; DOING takes the supplied
// value, falling back to fallback when none was supplied. Both are clamped.
func progressForStatus(status model.TaskStatus, supplied *int, fallback int) int {
	switch status {
	case model.StatusTodo:
		return 0
	case model.StatusDone:
		return 100
	default:
		if supplied != nil {
			return clampProgress(*supplied)
		}
		return clampProgress(fallback)
	}
}

// statusForProgress infers the workflow state from a bare progress value.
func statusForProgress(p int) model.TaskStatus {
	switch {
	case p == 0:
		return model.StatusTodo
	case p == 100:
		return model.StatusDone
	default:
		return model.StatusDoing
	}
}

// applyPatch merges the supplied fields into the task, keeping status and
// progress mutually consistent. Fields are enumerated explicitly; when status
// is present it drives progress, otherwise a bare progress drives status.
func applyPatch(task *model.Task, patch TaskPatch) {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}

	switch {
	case patch.Status != nil:
		task.Status = *patch.Status
		task.Progress = progressForStatus(*patch.Status, patch.Progress, task.Progress)
	case patch.Progress != nil:
		// The binding layer already restricts progress to [0,100]; the value
		// is taken as given here.
		task.Progress = *patch.Progress
		task.Status = statusForProgress(*patch.Progress)
	}
}
