package model

import (
	"time"

	"github.com/google/uuid"
)

type Label struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	Color     string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Tasks []Task `gorm:"many2many:task_labels"`
}

// LightPalette holds the colors assigned to labels created implicitly
// through task attachment.
var LightPalette = []string{
	"#FFCDD2", "#F8BBD0", "#E1BEE7", "#D1C4E9", "#C5CAE9",
	"#BBDEFB", "#B3E5FC", "#B2EBF2", "#B2DFDB", "#C8E6C9",
	"#DCEDC8", "#F0F4C3", "#FFF9C4", "#FFECB3", "#FFE0B2",
	"#FFCCBC", "#D7CCC8", "#F5F5F5", "#CFD8DC",
}
