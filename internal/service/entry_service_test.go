package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/antrhizom/stud-i-agency-check/internal/curriculum"
	"github.com/antrhizom/stud-i-agency-check/internal/dto"
	"github.com/antrhizom/stud-i-agency-check/internal/progress"
)

func TestCreateEntryBiplaSnapshot(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewEntryService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	class := seedClass(st, teacher.UserID, "bipla")
	learner := seedLearner(st, class.ClassID)

	resp, err := svc.CreateEntry(ctx, learner.UserID, &dto.CreateEntryRequest{
		ThemeID:   "t1",
		HowMethod: "Fallbeispiel",
		HowCount:  2,
		Context:   "schule",
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	cat := curriculum.Bipla()
	theme, _ := cat.Theme("t1")
	if len(resp.MandatoryLanguageModes) != len(theme.MandatoryLanguageModes) {
		t.Errorf("Sprachmodi-Schnappschuss: %d, erwartet %d",
			len(resp.MandatoryLanguageModes), len(theme.MandatoryLanguageModes))
	}
	if len(resp.MandatoryKeySkills) != len(theme.MandatoryKeySkills) {
		t.Fatalf("Kompetenz-Schnappschuss: %d, erwartet %d",
			len(resp.MandatoryKeySkills), len(theme.MandatoryKeySkills))
	}
	// rundenqualifizierte Referenzen
	if resp.MandatoryKeySkills[0] != "3.2.2-R1" {
		t.Errorf("MandatoryKeySkills[0] = %q, erwartet 3.2.2-R1", resp.MandatoryKeySkills[0])
	}
	if resp.Type != progress.TypePractice {
		t.Errorf("Type = %q, erwartet %q", resp.Type, progress.TypePractice)
	}
}

func TestCreateEntryBiplaRejectsMandatoryAsAdditional(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewEntryService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	class := seedClass(st, teacher.UserID, "bipla")
	learner := seedLearner(st, class.ClassID)

	// 3.2.2 ist in t1 Pflicht und darf nicht zusätzlich gewählt werden
	_, err := svc.CreateEntry(ctx, learner.UserID, &dto.CreateEntryRequest{
		ThemeID:             "t1",
		HowMethod:           "Fallbeispiel",
		HowCount:            1,
		AdditionalKeySkills: []string{"3.2.2"},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, erwartet ValidationError", err)
	}
	if verr.Field != "additional_key_skills" {
		t.Errorf("Field = %q, erwartet additional_key_skills", verr.Field)
	}
}

func TestCreateEntryVocabularyChecks(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewEntryService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	class := seedClass(st, teacher.UserID, "bipla")
	learner := seedLearner(st, class.ClassID)

	cases := []struct {
		name  string
		req   dto.CreateEntryRequest
		field string
	}{
		{"unbekanntes thema", dto.CreateEntryRequest{ThemeID: "t99", HowMethod: "Fallbeispiel", HowCount: 1}, "theme_id"},
		{"methode nicht im vokabular", dto.CreateEntryRequest{ThemeID: "t1", HowMethod: "Frontalunterricht", HowCount: 1}, "how_method"},
		{"kontext nicht im vokabular", dto.CreateEntryRequest{ThemeID: "t1", HowMethod: "Fallbeispiel", HowCount: 1, Context: "ferien"}, "context"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateEntry(ctx, learner.UserID, &tc.req)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, erwartet ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, erwartet %q", verr.Field, tc.field)
			}
		})
	}
}

func TestCreateEntryEBAKompetenz(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewEntryService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	class := seedClass(st, teacher.UserID, "eba")
	learner := seedLearner(st, class.ClassID)

	resp, err := svc.CreateEntry(ctx, learner.UserID, &dto.CreateEntryRequest{
		ThemeID:               "t1",
		Type:                  progress.TypeKompetenz,
		CompetencyID:          "k1-1-1",
		OptionalLanguageModes: []string{"rezMuendlich"},
		Status:                "geuebt",
		HowMethod:             "Fallbeispiel",
		HowCount:              1,
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if resp.CompetencyID == nil || *resp.CompetencyID != "k1-1-1" {
		t.Errorf("CompetencyID = %v, erwartet k1-1-1", resp.CompetencyID)
	}
	if len(resp.MandatoryKeySkills) != 0 {
		t.Error("eba-Eintrag trägt keinen Pflichtlisten-Schnappschuss")
	}

	// Kompetenz aus einem anderen Thema
	_, err = svc.CreateEntry(ctx, learner.UserID, &dto.CreateEntryRequest{
		ThemeID: "t2", Type: progress.TypeKompetenz, CompetencyID: "k1-1-1",
		HowMethod: "Fallbeispiel", HowCount: 1,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "competency_id" {
		t.Errorf("Themenfremde Kompetenz akzeptiert: %v", err)
	}
}

func TestCreateEntryEBATransversal(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewEntryService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	class := seedClass(st, teacher.UserID, "eba")
	learner := seedLearner(st, class.ClassID)

	resp, err := svc.CreateEntry(ctx, learner.UserID, &dto.CreateEntryRequest{
		ThemeID: "t1", Type: progress.TypeTransversal, TransversalID: "nachhaltigkeit",
		HowMethod: "Projekt", HowCount: 1,
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if resp.TransversalID == nil || *resp.TransversalID != "nachhaltigkeit" {
		t.Errorf("TransversalID = %v, erwartet nachhaltigkeit", resp.TransversalID)
	}
}

func TestDeleteEntryImmutability(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewEntryService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	biplaClass := seedClass(st, teacher.UserID, "bipla")
	ebaClass := seedClass(st, teacher.UserID, "eba")
	biplaLearner := seedLearner(st, biplaClass.ClassID)
	ebaLearner := seedLearner(st, ebaClass.ClassID)

	biplaEntry, err := svc.CreateEntry(ctx, biplaLearner.UserID, &dto.CreateEntryRequest{
		ThemeID: "t1", HowMethod: "Fallbeispiel", HowCount: 1,
	})
	if err != nil {
		t.Fatalf("bipla CreateEntry: %v", err)
	}
	ebaEntry, err := svc.CreateEntry(ctx, ebaLearner.UserID, &dto.CreateEntryRequest{
		ThemeID: "t1", Type: progress.TypeKompetenz, CompetencyID: "k1-1-1",
		HowMethod: "Fallbeispiel", HowCount: 1,
	})
	if err != nil {
		t.Fatalf("eba CreateEntry: %v", err)
	}

	if err := svc.DeleteEntry(ctx, biplaLearner.UserID, biplaEntry.EntryID); !errors.Is(err, ErrEntryImmutable) {
		t.Errorf("bipla-Eintrag gelöscht: err = %v, erwartet ErrEntryImmutable", err)
	}
	if err := svc.DeleteEntry(ctx, biplaLearner.UserID, ebaEntry.EntryID); !errors.Is(err, ErrNotEntryOwner) {
		t.Errorf("fremder Eintrag: err = %v, erwartet ErrNotEntryOwner", err)
	}
	if err := svc.DeleteEntry(ctx, ebaLearner.UserID, ebaEntry.EntryID); err != nil {
		t.Errorf("eba DeleteEntry: %v", err)
	}
	if err := svc.DeleteEntry(ctx, ebaLearner.UserID, ebaEntry.EntryID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("zweites Löschen: err = %v, erwartet ErrEntryNotFound", err)
	}
}

func TestSetTeacherNote(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewEntryService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	other := seedTeacher(st, "fremd@schule.ch")
	class := seedClass(st, teacher.UserID, "bipla")
	learner := seedLearner(st, class.ClassID)

	entry, err := svc.CreateEntry(ctx, learner.UserID, &dto.CreateEntryRequest{
		ThemeID: "t1", HowMethod: "Fallbeispiel", HowCount: 1,
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	noted, err := svc.SetTeacherNote(ctx, teacher.UserID, entry.EntryID, &dto.TeacherNoteRequest{Note: "Gut beobachtet"})
	if err != nil {
		t.Fatalf("SetTeacherNote: %v", err)
	}
	if noted.TeacherNote == nil || *noted.TeacherNote != "Gut beobachtet" {
		t.Errorf("TeacherNote = %v, erwartet Gut beobachtet", noted.TeacherNote)
	}
	if noted.TeacherNoteAt == nil {
		t.Error("TeacherNoteAt fehlt")
	}

	// leerer Text löscht die Notiz als Ganzes
	cleared, err := svc.SetTeacherNote(ctx, teacher.UserID, entry.EntryID, &dto.TeacherNoteRequest{Note: ""})
	if err != nil {
		t.Fatalf("SetTeacherNote löschen: %v", err)
	}
	if cleared.TeacherNote != nil || cleared.TeacherNoteAt != nil {
		t.Error("Notiz nicht vollständig gelöscht")
	}

	if _, err := svc.SetTeacherNote(ctx, other.UserID, entry.EntryID, &dto.TeacherNoteRequest{Note: "x"}); !errors.Is(err, ErrLearnerNotInScope) {
		t.Errorf("fremde Lehrperson: err = %v, erwartet ErrLearnerNotInScope", err)
	}
}

func TestListForLearnerScope(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewEntryService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	other := seedTeacher(st, "fremd@schule.ch")
	class := seedClass(st, teacher.UserID, "bipla")
	learner := seedLearner(st, class.ClassID)

	if _, err := svc.CreateEntry(ctx, learner.UserID, &dto.CreateEntryRequest{
		ThemeID: "t1", HowMethod: "Fallbeispiel", HowCount: 1,
	}); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	entries, err := svc.ListForLearner(ctx, teacher.UserID, learner.UserID)
	if err != nil {
		t.Fatalf("ListForLearner: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len = %d, erwartet 1", len(entries))
	}
	if _, err := svc.ListForLearner(ctx, other.UserID, learner.UserID); !errors.Is(err, ErrLearnerNotInScope) {
		t.Errorf("fremde Lehrperson: err = %v, erwartet ErrLearnerNotInScope", err)
	}
}
