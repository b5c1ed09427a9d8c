package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/antrhizom/stud-i-agency-check/internal/model"
)

// UserRepository Datenzugriff für Benutzer
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListByClass(ctx context.Context, classID string) ([]model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo erzeugt eine UserRepository-Instanz
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByClass liefert alle Lernenden einer Klasse
func (r *userRepo) ListByClass(ctx context.Context, classID string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND role = ?", classID, model.RoleLearner).
		Order("display_name").
		Find(&users).Error
	return users, err
}
