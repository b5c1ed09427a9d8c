package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/antrhizom/stud-i-agency-check/internal/model"
)

// LearnerCodeRepository Datenzugriff für Zugangscodes
type LearnerCodeRepository interface {
	CreateBatch(ctx context.Context, codes []model.LearnerCode) error
	GetByCode(ctx context.Context, code string) (*model.LearnerCode, error)
	// GetByCodeForUpdate sperrt die Zeile mit SELECT ... FOR UPDATE,
	// damit ein Code nicht doppelt eingelöst werden kann.
	// Nur innerhalb einer Transaktion aufrufen.
	GetByCodeForUpdate(ctx context.Context, code string) (*model.LearnerCode, error)
	MarkUsed(ctx context.Context, learnerCodeID, userID string) error
	ListByClass(ctx context.Context, classID string) ([]model.LearnerCode, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}

type learnerCodeRepo struct {
	db *gorm.DB
}

// NewLearnerCodeRepo erzeugt eine LearnerCodeRepository-Instanz
func NewLearnerCodeRepo(db *gorm.DB) LearnerCodeRepository {
	return &learnerCodeRepo{db: db}
}

func (r *learnerCodeRepo) CreateBatch(ctx context.Context, codes []model.LearnerCode) error {
	return r.db.WithContext(ctx).Create(&codes).Error
}

func (r *learnerCodeRepo) GetByCode(ctx context.Context, code string) (*model.LearnerCode, error) {
	var lc model.LearnerCode
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&lc).Error
	if err != nil {
		return nil, err
	}
	return &lc, nil
}

func (r *learnerCodeRepo) GetByCodeForUpdate(ctx context.Context, code string) (*model.LearnerCode, error) {
	var lc model.LearnerCode
	err := r.db.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		Where("code = ?", code).
		First(&lc).Error
	if err != nil {
		return nil, err
	}
	return &lc, nil
}

func (r *learnerCodeRepo) MarkUsed(ctx context.Context, learnerCodeID, userID string) error {
	return r.db.WithContext(ctx).
		Model(&model.LearnerCode{}).
		Where("learner_code_id = ?", learnerCodeID).
		Updates(map[string]interface{}{
			"used":    true,
			"user_id": userID,
		}).Error
}

func (r *learnerCodeRepo) ListByClass(ctx context.Context, classID string) ([]model.LearnerCode, error) {
	var codes []model.LearnerCode
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("animal_name").
		Find(&codes).Error
	return codes, err
}

// CodeExists prüft ob ein Code bereits vergeben ist
func (r *learnerCodeRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LearnerCode{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}
