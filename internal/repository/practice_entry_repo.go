package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/antrhizom/stud-i-agency-check/internal/model"
)

// PracticeEntryRepository Datenzugriff für Übungseinträge
type PracticeEntryRepository interface {
	Create(ctx context.Context, entry *model.PracticeEntry) error
	GetByID(ctx context.Context, entryID string) (*model.PracticeEntry, error)
	ListByUser(ctx context.Context, userID string) ([]model.PracticeEntry, error)
	Delete(ctx context.Context, entryID string) error
	// SetTeacherNote überschreibt die Lehrpersonen-Notiz als Ganzes.
	// note nil löscht die Notiz samt Zeitstempel.
	SetTeacherNote(ctx context.Context, entryID string, note *string, at *time.Time) error
}

type practiceEntryRepo struct {
	db *gorm.DB
}

// NewPracticeEntryRepo erzeugt eine PracticeEntryRepository-Instanz
func NewPracticeEntryRepo(db *gorm.DB) PracticeEntryRepository {
	return &practiceEntryRepo{db: db}
}

func (r *practiceEntryRepo) Create(ctx context.Context, entry *model.PracticeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *practiceEntryRepo) GetByID(ctx context.Context, entryID string) (*model.PracticeEntry, error) {
	var entry model.PracticeEntry
	err := r.db.WithContext(ctx).
		Where("entry_id = ?", entryID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByUser liefert alle Einträge eines Lernenden, neueste zuerst
func (r *practiceEntryRepo) ListByUser(ctx context.Context, userID string) ([]model.PracticeEntry, error) {
	var entries []model.PracticeEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *practiceEntryRepo) Delete(ctx context.Context, entryID string) error {
	return r.db.WithContext(ctx).
		Where("entry_id = ?", entryID).
		Delete(&model.PracticeEntry{}).Error
}

func (r *practiceEntryRepo) SetTeacherNote(ctx context.Context, entryID string, note *string, at *time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.PracticeEntry{}).
		Where("entry_id = ?", entryID).
		Updates(map[string]interface{}{
			"teacher_note":    note,
			"teacher_note_at": at,
		}).Error
}
