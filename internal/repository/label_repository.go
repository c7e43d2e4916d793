package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/internal/model"
)

// LabelUsage pairs a label with the number of tasks carrying it.
type LabelUsage struct {
	ID    uuid.UUID
	Name  string
	Color string
	Count int64
}

type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// Create adds a new label to the database
func (r *LabelRepository) Create(ctx context.Context, label *model.Label) error {
	err := r.db.WithContext(ctx).Create(label).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateLabelName
	}
	return err
}

// GetByID retrieves a label by its ID
func (r *LabelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	var label model.Label
	result := r.db.WithContext(ctx).First(&label, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, result.Error
	}
	return &label, nil
}

// GetByName retrieves a label by its unique name (case-sensitive exact match)
func (r *LabelRepository) GetByName(ctx context.Context, name string) (*model.Label, error) {
	var label model.Label
	result := r.db.WithContext(ctx).First(&label, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, result.Error
	}
	return &label, nil
}

// List retrieves labels with offset/limit pagination
func (r *LabelRepository) List(ctx context.Context, skip, limit int) ([]model.Label, error) {
	query := r.db.WithContext(ctx).Offset(skip).Order("name")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var labels []model.Label
	result := query.Find(&labels)
	if result.Error != nil {
		return nil, result.Error
	}
	return labels, nil
}

// Update updates an existing label
func (r *LabelRepository) Update(ctx context.Context, label *model.Label) error {
	result := r.db.WithContext(ctx).Save(label)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateLabelName
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLabelNotFound
	}
	return nil
}

// Delete removes a label by its ID
func (r *LabelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Select("Tasks").Delete(&model.Label{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLabelNotFound
	}
	return nil
}

// UsageCounts retrieves every label with the number of tasks it is attached to
func (r *LabelRepository) UsageCounts(ctx context.Context) ([]LabelUsage, error) {
	var usages []LabelUsage
	result := r.db.WithContext(ctx).
		Table("labels").
		Select("labels.id, labels.name, labels.color, COUNT(task_labels.task_id) AS count").
		Joins("LEFT JOIN task_labels ON task_labels.label_id = labels.id").
		Group("labels.id, labels.name, labels.color").
		Order("labels.name").
		Scan(&usages)
	if result.Error != nil {
		return nil, result.Error
	}
	return usages, nil
}
