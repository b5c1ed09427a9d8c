package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antrhizom/stud-i-agency-check/internal/curriculum"
	"github.com/antrhizom/stud-i-agency-check/internal/dto"
	"github.com/antrhizom/stud-i-agency-check/internal/model"
	"github.com/antrhizom/stud-i-agency-check/internal/repository"
)

var (
	ErrClassNotFound    = errors.New("klasse nicht gefunden")
	ErrNotClassOwner    = errors.New("klasse gehört einer anderen lehrperson")
	ErrClassTooLarge    = errors.New("maximal 30 lernende pro klasse möglich")
	ErrInvalidVariant   = errors.New("unbekannte lehrplan-variante")
	ErrCodeSpaceExhaust = errors.New("kein freier zugangscode gefunden")
)

// codeAlphabet ohne die verwechselbaren Zeichen I, O, 0, 1
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

// ClassService Klassen- und Codeverwaltung für Lehrpersonen
type ClassService interface {
	// CreateClass legt die Klasse an und erzeugt learnerCount eindeutige
	// Pseudonym/Code-Paare. Pseudonyme werden ohne Zurücklegen aus dem
	// Tierpool gezogen.
	CreateClass(ctx context.Context, teacherID string, req *dto.CreateClassRequest) (*dto.ClassDetailResponse, error)
	ListClasses(ctx context.Context, teacherID string) ([]dto.ClassResponse, error)
	GetClassDetail(ctx context.Context, teacherID, classID string) (*dto.ClassDetailResponse, error)
	// OwnedClass lädt eine Klasse und prüft die Eigentümerschaft
	OwnedClass(ctx context.Context, teacherID, classID string) (*model.Class, error)
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService erzeugt eine ClassService-Instanz
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) CreateClass(ctx context.Context, teacherID string, req *dto.CreateClassRequest) (*dto.ClassDetailResponse, error) {
	if !curriculum.Variant(req.Variant).Valid() {
		return nil, ErrInvalidVariant
	}
	if req.LearnerCount > len(curriculum.AnimalSymbols) {
		return nil, ErrClassTooLarge
	}

	animals, err := sampleAnimals(req.LearnerCount)
	if err != nil {
		return nil, err
	}

	var class *model.Class
	var codes []model.LearnerCode

	err = s.repo.Transaction(func(tx *repository.Repository) error {
		class = &model.Class{
			TeacherID: teacherID,
			Name:      req.Name,
			Variant:   req.Variant,
		}
		if err := tx.Class.Create(ctx, class); err != nil {
			return err
		}

		seen := make(map[string]struct{}, len(animals))
		codes = make([]model.LearnerCode, 0, len(animals))
		for _, animal := range animals {
			code, err := s.uniqueCode(ctx, tx, seen)
			if err != nil {
				return err
			}
			seen[code] = struct{}{}
			codes = append(codes, model.LearnerCode{
				ClassID:     class.ClassID,
				Code:        code,
				AnimalID:    animal.ID,
				AnimalName:  animal.Name,
				AnimalEmoji: animal.Emoji,
			})
		}
		return tx.LearnerCode.CreateBatch(ctx, codes)
	})
	if err != nil {
		s.logger.Error("klasse anlegen fehlgeschlagen", zap.Error(err))
		return nil, err
	}

	s.logger.Info("klasse angelegt",
		zap.String("class_id", class.ClassID),
		zap.String("teacher_id", teacherID),
		zap.Int("codes", len(codes)))

	return buildClassDetail(class, codes), nil
}

func (s *classService) ListClasses(ctx context.Context, teacherID string) ([]dto.ClassResponse, error) {
	classes, err := s.repo.Class.ListByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Error("klassenliste fehlgeschlagen", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		codes, err := s.repo.LearnerCode.ListByClass(ctx, classes[i].ClassID)
		if err != nil {
			return nil, err
		}
		out = append(out, buildClassResponse(&classes[i], len(codes)))
	}
	return out, nil
}

func (s *classService) GetClassDetail(ctx context.Context, teacherID, classID string) (*dto.ClassDetailResponse, error) {
	class, err := s.OwnedClass(ctx, teacherID, classID)
	if err != nil {
		return nil, err
	}
	codes, err := s.repo.LearnerCode.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	return buildClassDetail(class, codes), nil
}

func (s *classService) OwnedClass(ctx context.Context, teacherID, classID string) (*model.Class, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	if class.TeacherID != teacherID {
		return nil, ErrNotClassOwner
	}
	return class, nil
}

// uniqueCode zieht Codes, bis einer weder im Batch noch in der
// Datenbank vorkommt
func (s *classService) uniqueCode(ctx context.Context, tx *repository.Repository, seen map[string]struct{}) (string, error) {
	for attempt := 0; attempt < 100; attempt++ {
		code, err := randomCode()
		if err != nil {
			return "", err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		exists, err := tx.LearnerCode.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhaust
}

func randomCode() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("zufallsquelle: %w", err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// sampleAnimals zieht count Pseudonyme ohne Zurücklegen (Fisher-Yates)
func sampleAnimals(count int) ([]curriculum.AnimalSymbol, error) {
	pool := make([]curriculum.AnimalSymbol, len(curriculum.AnimalSymbols))
	copy(pool, curriculum.AnimalSymbols)

	for i := len(pool) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return nil, fmt.Errorf("zufallsquelle: %w", err)
		}
		j := int(n.Int64())
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count], nil
}

func buildClassResponse(class *model.Class, learnerCount int) dto.ClassResponse {
	return dto.ClassResponse{
		ClassID:      class.ClassID,
		Name:         class.Name,
		Variant:      class.Variant,
		LearnerCount: learnerCount,
		CreatedAt:    class.CreatedAt.Format(time.RFC3339),
	}
}

func buildClassDetail(class *model.Class, codes []model.LearnerCode) *dto.ClassDetailResponse {
	codeResponses := make([]dto.LearnerCodeResponse, 0, len(codes))
	for _, c := range codes {
		codeResponses = append(codeResponses, dto.LearnerCodeResponse{
			LearnerCodeID: c.LearnerCodeID,
			Code:          c.Code,
			AnimalID:      c.AnimalID,
			AnimalName:    c.AnimalName,
			AnimalEmoji:   c.AnimalEmoji,
			Used:          c.Used,
			UserID:        c.UserID,
		})
	}
	return &dto.ClassDetailResponse{
		Class: buildClassResponse(class, len(codes)),
		Codes: codeResponses,
	}
}
