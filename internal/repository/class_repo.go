package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/antrhizom/stud-i-agency-check/internal/model"
)

// ClassRepository Datenzugriff für Klassen
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	GetByID(ctx context.Context, classID string) (*model.Class, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]model.Class, error)
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo erzeugt eine ClassRepository-Instanz
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepo) GetByID(ctx context.Context, classID string) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) ListByTeacher(ctx context.Context, teacherID string) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&classes).Error
	return classes, err
}
