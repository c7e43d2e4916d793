package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	StatusTodo  TaskStatus = "TODO"
	StatusDoing TaskStatus = "DOING"
	StatusDone  TaskStatus = "DONE"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string     `gorm:"not null"`
	Description string
	Status      TaskStatus `gorm:"not null;default:'TODO';check:status IN ('TODO', 'DOING', 'DONE')"`
	Progress    int        `gorm:"not null;default:0"`
	IsActive    bool       `gorm:"not null;default:true"`
	DueDate     *time.Time
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner        User    `gorm:"foreignKey:OwnerID"`
	Labels       []Label `gorm:"many2many:task_labels"`
	Participants []User  `gorm:"many2many:task_participants"`
}
