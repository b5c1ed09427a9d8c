package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antrhizom/stud-i-agency-check/internal/curriculum"
	"github.com/antrhizom/stud-i-agency-check/internal/dto"
	"github.com/antrhizom/stud-i-agency-check/internal/model"
	"github.com/antrhizom/stud-i-agency-check/internal/progress"
	"github.com/antrhizom/stud-i-agency-check/internal/repository"
)

var (
	ErrEntryNotFound     = errors.New("eintrag nicht gefunden")
	ErrNotEntryOwner     = errors.New("eintrag gehört einem anderen lernenden")
	ErrEntryImmutable    = errors.New("einträge dieser variante können nicht gelöscht werden")
	ErrLearnerNotInScope = errors.New("lernende:r gehört nicht zu dieser lehrperson")
	ErrNoClass           = errors.New("lernende:r ist keiner klasse zugeordnet")
)

// ValidationError Eingabefehler mit Feldbezug
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Detail)
}

func invalid(field, detail string) error {
	return &ValidationError{Field: field, Detail: detail}
}

// EntryService Übungseinträge: anlegen, auflisten, löschen, annotieren
type EntryService interface {
	// CreateEntry legt einen Eintrag an. Bipla-Einträge schreiben die
	// Pflichtlisten des Themas als Schnappschuss mit, eba-Einträge
	// referenzieren genau einen Knoten. Alle Referenzen werden gegen den
	// Katalog der Klassen-Variante geprüft.
	CreateEntry(ctx context.Context, userID string, req *dto.CreateEntryRequest) (*dto.EntryResponse, error)
	ListOwn(ctx context.Context, userID string) ([]dto.EntryResponse, error)
	// ListForLearner listet die Einträge eines Lernenden für dessen
	// Lehrperson
	ListForLearner(ctx context.Context, teacherID, learnerID string) ([]dto.EntryResponse, error)
	// DeleteEntry löscht einen eigenen Eintrag. Nur eba erlaubt das;
	// bipla-Einträge sind unveränderlich.
	DeleteEntry(ctx context.Context, userID, entryID string) error
	// SetTeacherNote überschreibt die Notiz als Ganzes; leerer Text
	// löscht sie. Der letzte Schreibzugriff gewinnt.
	SetTeacherNote(ctx context.Context, teacherID, entryID string, req *dto.TeacherNoteRequest) (*dto.EntryResponse, error)
}

type entryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEntryService erzeugt eine EntryService-Instanz
func NewEntryService(repo *repository.Repository, logger *zap.Logger) EntryService {
	return &entryService{repo: repo, logger: logger}
}

func (s *entryService) CreateEntry(ctx context.Context, userID string, req *dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ClassID == nil {
		return nil, ErrNoClass
	}
	class, err := s.repo.Class.GetByID(ctx, *user.ClassID)
	if err != nil {
		return nil, err
	}

	cat, ok := curriculum.ByVariant(curriculum.Variant(class.Variant))
	if !ok {
		return nil, ErrInvalidVariant
	}
	theme, ok := cat.Theme(req.ThemeID)
	if !ok {
		return nil, invalid("theme_id", "unbekanntes thema")
	}
	if !curriculum.ValidHowMethod(req.HowMethod) {
		return nil, invalid("how_method", "nicht im vokabular")
	}
	if req.Context != "" && !curriculum.ValidContext(req.Context) {
		return nil, invalid("context", "nicht im vokabular")
	}

	entry := &model.PracticeEntry{
		UserID:    userID,
		ClassID:   class.ClassID,
		Variant:   class.Variant,
		ThemeID:   req.ThemeID,
		HowMethod: req.HowMethod,
		HowCount:  req.HowCount,
		Context:   optString(req.Context),
		Note:      optString(req.Note),
	}

	switch cat.Variant {
	case curriculum.VariantBipla:
		if err := s.fillBiplaEntry(cat, theme, req, entry); err != nil {
			return nil, err
		}
	case curriculum.VariantEBA:
		if err := s.fillEBAEntry(cat, theme, req, entry); err != nil {
			return nil, err
		}
	}

	if err := s.repo.PracticeEntry.Create(ctx, entry); err != nil {
		s.logger.Error("eintrag anlegen fehlgeschlagen", zap.Error(err))
		return nil, err
	}

	resp := buildEntryResponse(entry)
	return &resp, nil
}

// fillBiplaEntry schreibt den Pflichtlisten-Schnappschuss des Themas und
// prüft die freiwilligen Zusatzlisten gegen die Differenzmengen
func (s *entryService) fillBiplaEntry(cat *curriculum.Catalog, theme curriculum.Theme, req *dto.CreateEntryRequest, entry *model.PracticeEntry) error {
	entry.Type = progress.TypePractice

	entry.MandatoryLanguageModes = append(model.StringArray{}, theme.MandatoryLanguageModes...)
	entry.MandatorySociety = append(model.StringArray{}, theme.MandatorySociety...)
	skills := make(model.StringArray, 0, len(theme.MandatoryKeySkills))
	for _, ref := range theme.MandatoryKeySkills {
		skills = append(skills, ref.ID+"-"+string(ref.Round))
	}
	entry.MandatoryKeySkills = skills

	optionalModes := nodeSet(cat.OptionalNodes(theme.ID, curriculum.KindLanguageMode))
	for _, id := range req.AdditionalLanguageModes {
		if _, ok := optionalModes[id]; !ok {
			return invalid("additional_language_modes", "kein freiwilliger sprachmodus dieses themas: "+id)
		}
	}
	optionalSkills := nodeSet(cat.OptionalNodes(theme.ID, curriculum.KindKeySkill))
	for _, id := range req.AdditionalKeySkills {
		if _, ok := optionalSkills[id]; !ok {
			return invalid("additional_key_skills", "keine freiwillige schlüsselkompetenz dieses themas: "+id)
		}
	}
	entry.AdditionalLanguageModes = model.StringArray(req.AdditionalLanguageModes)
	entry.AdditionalKeySkills = model.StringArray(req.AdditionalKeySkills)
	return nil
}

// fillEBAEntry prüft die Einzelknoten-Referenz des Eintrags
func (s *entryService) fillEBAEntry(cat *curriculum.Catalog, theme curriculum.Theme, req *dto.CreateEntryRequest, entry *model.PracticeEntry) error {
	entry.Type = req.Type

	switch req.Type {
	case progress.TypeKompetenz:
		k, ok := cat.Competency(req.CompetencyID)
		if !ok || !themeHasCompetency(theme, req.CompetencyID) {
			return invalid("competency_id", "unbekannte kompetenz in diesem thema")
		}
		entry.CompetencyID = &k.ID
		for _, id := range req.OptionalLanguageModes {
			if !contains(k.OptionalModes, id) {
				return invalid("optional_language_modes", "kein freiwilliger sprachmodus dieser kompetenz: "+id)
			}
		}
		entry.OptionalLanguageModes = model.StringArray(req.OptionalLanguageModes)
		if req.Status != "" {
			if !curriculum.ValidStatus(req.Status) {
				return invalid("status", "nicht im vokabular")
			}
			entry.Status = &req.Status
		}
	case progress.TypeSchluesselskill:
		found := false
		for _, ref := range theme.MandatoryKeySkills {
			if ref.ID == req.KeySkillID {
				found = true
				break
			}
		}
		if !found {
			return invalid("key_skill_id", "keine schlüsselkompetenz dieses themas")
		}
		entry.KeySkillID = &req.KeySkillID
	case progress.TypeTransversal:
		if _, ok := cat.TransversalTopic(req.TransversalID); !ok {
			return invalid("transversal_id", "unbekanntes transversales thema")
		}
		entry.TransversalID = &req.TransversalID
	default:
		return invalid("type", "unbekannter eintragstyp")
	}
	return nil
}

func (s *entryService) ListOwn(ctx context.Context, userID string) ([]dto.EntryResponse, error) {
	entries, err := s.repo.PracticeEntry.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("eintragsliste fehlgeschlagen", zap.Error(err))
		return nil, err
	}
	return buildEntryResponses(entries), nil
}

func (s *entryService) ListForLearner(ctx context.Context, teacherID, learnerID string) ([]dto.EntryResponse, error) {
	if err := checkTeacherScope(ctx, s.repo, teacherID, learnerID); err != nil {
		return nil, err
	}
	entries, err := s.repo.PracticeEntry.ListByUser(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	return buildEntryResponses(entries), nil
}

func (s *entryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	entry, err := s.repo.PracticeEntry.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		return err
	}
	if entry.UserID != userID {
		return ErrNotEntryOwner
	}
	if entry.Variant != string(curriculum.VariantEBA) {
		return ErrEntryImmutable
	}
	return s.repo.PracticeEntry.Delete(ctx, entryID)
}

func (s *entryService) SetTeacherNote(ctx context.Context, teacherID, entryID string, req *dto.TeacherNoteRequest) (*dto.EntryResponse, error) {
	entry, err := s.repo.PracticeEntry.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	if err := checkTeacherScope(ctx, s.repo, teacherID, entry.UserID); err != nil {
		return nil, err
	}

	var note *string
	var at *time.Time
	if req.Note != "" {
		now := time.Now()
		note, at = &req.Note, &now
	}
	if err := s.repo.PracticeEntry.SetTeacherNote(ctx, entryID, note, at); err != nil {
		s.logger.Error("notiz setzen fehlgeschlagen", zap.Error(err))
		return nil, err
	}

	entry.TeacherNote = note
	entry.TeacherNoteAt = at
	resp := buildEntryResponse(entry)
	return &resp, nil
}

// checkTeacherScope prüft die Kette learner → class → teacher
func checkTeacherScope(ctx context.Context, repo *repository.Repository, teacherID, learnerID string) error {
	learner, err := repo.User.GetByID(ctx, learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if learner.ClassID == nil {
		return ErrLearnerNotInScope
	}
	class, err := repo.Class.GetByID(ctx, *learner.ClassID)
	if err != nil {
		return err
	}
	if class.TeacherID != teacherID {
		return ErrLearnerNotInScope
	}
	return nil
}

func themeHasCompetency(theme curriculum.Theme, competencyID string) bool {
	for _, lb := range theme.LifeContexts {
		for _, k := range lb.Competencies {
			if k.ID == competencyID {
				return true
			}
		}
	}
	return false
}

func nodeSet(refs []curriculum.NodeRef) map[string]struct{} {
	set := make(map[string]struct{}, len(refs))
	for _, r := range refs {
		set[r.ID] = struct{}{}
	}
	return set
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func buildEntryResponse(e *model.PracticeEntry) dto.EntryResponse {
	return dto.EntryResponse{
		EntryID:                 e.EntryID,
		UserID:                  e.UserID,
		Variant:                 e.Variant,
		Type:                    e.Type,
		ThemeID:                 e.ThemeID,
		MandatoryLanguageModes:  e.MandatoryLanguageModes,
		MandatorySociety:        e.MandatorySociety,
		MandatoryKeySkills:      e.MandatoryKeySkills,
		AdditionalLanguageModes: e.AdditionalLanguageModes,
		AdditionalKeySkills:     e.AdditionalKeySkills,
		CompetencyID:            e.CompetencyID,
		KeySkillID:              e.KeySkillID,
		TransversalID:           e.TransversalID,
		OptionalLanguageModes:   e.OptionalLanguageModes,
		Status:                  e.Status,
		HowMethod:               e.HowMethod,
		HowCount:                e.HowCount,
		Context:                 e.Context,
		Note:                    e.Note,
		TeacherNote:             e.TeacherNote,
		TeacherNoteAt:           e.TeacherNoteAt,
		CreatedAt:               e.CreatedAt,
	}
}

func buildEntryResponses(entries []model.PracticeEntry) []dto.EntryResponse {
	out := make([]dto.EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, buildEntryResponse(&entries[i]))
	}
	return out
}
