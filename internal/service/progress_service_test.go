package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/antrhizom/stud-i-agency-check/internal/curriculum"
	"github.com/antrhizom/stud-i-agency-check/internal/dto"
)

func TestOwnDashboardBipla(t *testing.T) {
	repo, st := newTestRepo()
	entrySvc := NewEntryService(repo, zap.NewNop())
	progressSvc := NewProgressService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	class := seedClass(st, teacher.UserID, "bipla")
	learner := seedLearner(st, class.ClassID)

	// t1 trägt u.a. 3.2.2-R1; der Schnappschuss erfüllt das Vorkommen
	if _, err := entrySvc.CreateEntry(ctx, learner.UserID, &dto.CreateEntryRequest{
		ThemeID: "t1", HowMethod: "Fallbeispiel", HowCount: 1,
	}); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	dash, err := progressSvc.OwnDashboard(ctx, learner.UserID)
	if err != nil {
		t.Fatalf("OwnDashboard: %v", err)
	}
	if dash.Variant != "bipla" {
		t.Errorf("Variant = %q, erwartet bipla", dash.Variant)
	}
	if dash.TotalEntries != 1 {
		t.Errorf("TotalEntries = %d, erwartet 1", dash.TotalEntries)
	}
	if dash.RewardEligible {
		t.Error("Belohnung ohne freiwillige Übungen")
	}

	cat := curriculum.Bipla()
	if len(dash.SkillProgress) != len(cat.KeySkills) {
		t.Fatalf("SkillProgress: %d Zeilen, erwartet %d", len(dash.SkillProgress), len(cat.KeySkills))
	}
	var goalSetting *dto.SkillProgressResponse
	for i := range dash.SkillProgress {
		if dash.SkillProgress[i].SkillID == "3.2.2" {
			goalSetting = &dash.SkillProgress[i]
		}
	}
	if goalSetting == nil {
		t.Fatal("3.2.2 fehlt im Fortschritt")
	}
	if goalSetting.Completed != 1 {
		t.Errorf("3.2.2 Completed = %d, erwartet 1", goalSetting.Completed)
	}
	foundT1 := false
	for _, occ := range goalSetting.Occurrences {
		if occ.ThemeID == "t1" {
			foundT1 = true
			if !occ.Completed {
				t.Error("Vorkommen t1 nicht als erledigt markiert")
			}
		} else if occ.Completed {
			t.Errorf("Vorkommen %s fälschlich erledigt", occ.ThemeID)
		}
	}
	if !foundT1 {
		t.Error("Vorkommen t1 fehlt")
	}

	if len(dash.Themes) != len(cat.Themes) {
		t.Errorf("Themes: %d Zeilen, erwartet %d", len(dash.Themes), len(cat.Themes))
	}
	if dash.Themes[0].ThemeID != "t1" || dash.Themes[0].EntryCount != 1 {
		t.Errorf("Themes[0] = %+v, erwartet t1 mit 1 Eintrag", dash.Themes[0])
	}

	// bipla-Raster führt nur Schlüsselkompetenzen
	if len(dash.Circularity.Society) != 0 || len(dash.Circularity.LanguageModes) != 0 {
		t.Error("bipla-Raster enthält Gesellschafts- oder Sprachmodus-Zeilen")
	}
	if len(dash.Circularity.KeySkills) != len(cat.KeySkills) {
		t.Errorf("Rasterzeilen: %d, erwartet %d", len(dash.Circularity.KeySkills), len(cat.KeySkills))
	}
}

func TestOwnDashboardRewardEBA(t *testing.T) {
	repo, st := newTestRepo()
	entrySvc := NewEntryService(repo, zap.NewNop())
	progressSvc := NewProgressService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	class := seedClass(st, teacher.UserID, "eba")
	learner := seedLearner(st, class.ClassID)

	// drei freiwillige Übungen: ein transversaler Eintrag plus eine
	// Kompetenz mit zwei freiwilligen Sprachmodi
	if _, err := entrySvc.CreateEntry(ctx, learner.UserID, &dto.CreateEntryRequest{
		ThemeID: "t1", Type: "transversal", TransversalID: "digitalisierung",
		HowMethod: "Projekt", HowCount: 1,
	}); err != nil {
		t.Fatalf("transversaler Eintrag: %v", err)
	}
	if _, err := entrySvc.CreateEntry(ctx, learner.UserID, &dto.CreateEntryRequest{
		ThemeID: "t1", Type: "kompetenz", CompetencyID: "k1-1-1",
		OptionalLanguageModes: []string{"rezMuendlich", "rezSchriftlich"},
		HowMethod:             "Fallbeispiel", HowCount: 1,
	}); err != nil {
		t.Fatalf("kompetenz-Eintrag: %v", err)
	}

	dash, err := progressSvc.OwnDashboard(ctx, learner.UserID)
	if err != nil {
		t.Fatalf("OwnDashboard: %v", err)
	}
	if dash.VoluntaryCount != 3 {
		t.Errorf("VoluntaryCount = %d, erwartet 3", dash.VoluntaryCount)
	}
	if !dash.RewardEligible {
		t.Error("Belohnung ab 3 freiwilligen Übungen nicht freigeschaltet")
	}
	if dash.RewardEmoji != curriculum.GrootReward.Emoji {
		t.Errorf("RewardEmoji = %q, erwartet %q", dash.RewardEmoji, curriculum.GrootReward.Emoji)
	}
}

func TestLearnerDashboardScope(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewProgressService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	other := seedTeacher(st, "fremd@schule.ch")
	class := seedClass(st, teacher.UserID, "bipla")
	learner := seedLearner(st, class.ClassID)

	if _, err := svc.LearnerDashboard(ctx, teacher.UserID, learner.UserID); err != nil {
		t.Fatalf("LearnerDashboard: %v", err)
	}
	if _, err := svc.LearnerDashboard(ctx, other.UserID, learner.UserID); !errors.Is(err, ErrLearnerNotInScope) {
		t.Errorf("fremde Lehrperson: err = %v, erwartet ErrLearnerNotInScope", err)
	}
}

func TestOwnDashboardWithoutClass(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewProgressService(repo, zap.NewNop())

	teacher := seedTeacher(st, "abu@schule.ch")
	if _, err := svc.OwnDashboard(context.Background(), teacher.UserID); !errors.Is(err, ErrNoClass) {
		t.Errorf("err = %v, erwartet ErrNoClass", err)
	}
}
