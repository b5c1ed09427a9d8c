package repository

import "gorm.io/gorm"

// Repository Sammeleinstieg für alle Repositories
type Repository struct {
	User          UserRepository
	Class         ClassRepository
	LearnerCode   LearnerCodeRepository
	PracticeEntry PracticeEntryRepository

	db *gorm.DB
}

// NewRepository erzeugt das Repository-Aggregat
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:          NewUserRepo(db),
		Class:         NewClassRepo(db),
		LearnerCode:   NewLearnerCodeRepo(db),
		PracticeEntry: NewPracticeEntryRepo(db),
		db:            db,
	}
}

// WithTx liefert ein Repository-Aggregat, das auf der übergebenen
// Transaktion arbeitet
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// Transaction führt fn innerhalb einer Datenbanktransaktion aus.
// Ohne db-Handle läuft fn ohne Transaktionsklammer.
func (r *Repository) Transaction(fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
