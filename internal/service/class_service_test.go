package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/antrhizom/stud-i-agency-check/internal/curriculum"
	"github.com/antrhizom/stud-i-agency-check/internal/dto"
)

func TestCreateClassGeneratesCodes(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewClassService(repo, zap.NewNop())
	teacher := seedTeacher(st, "abu@schule.ch")

	detail, err := svc.CreateClass(context.Background(), teacher.UserID, &dto.CreateClassRequest{
		Name: "ABU 1a", Variant: "bipla", LearnerCount: 12,
	})
	if err != nil {
		t.Fatalf("CreateClass: %v", err)
	}
	if len(detail.Codes) != 12 {
		t.Fatalf("len(Codes) = %d, erwartet 12", len(detail.Codes))
	}

	seenCodes := make(map[string]bool)
	seenAnimals := make(map[string]bool)
	for _, c := range detail.Codes {
		if len(c.Code) != 6 {
			t.Errorf("Code %q hat nicht 6 Zeichen", c.Code)
		}
		for _, r := range c.Code {
			if !strings.ContainsRune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789", r) {
				t.Errorf("Code %q enthält verwechselbares Zeichen %q", c.Code, r)
			}
		}
		if seenCodes[c.Code] {
			t.Errorf("Code %q doppelt vergeben", c.Code)
		}
		seenCodes[c.Code] = true
		if seenAnimals[c.AnimalID] {
			t.Errorf("Tiersymbol %q doppelt vergeben", c.AnimalID)
		}
		seenAnimals[c.AnimalID] = true
	}
}

func TestCreateClassPoolBound(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewClassService(repo, zap.NewNop())
	teacher := seedTeacher(st, "abu@schule.ch")

	_, err := svc.CreateClass(context.Background(), teacher.UserID, &dto.CreateClassRequest{
		Name: "ABU 1a", Variant: "eba", LearnerCount: len(curriculum.AnimalSymbols) + 1,
	})
	if !errors.Is(err, ErrClassTooLarge) {
		t.Errorf("err = %v, erwartet ErrClassTooLarge", err)
	}
}

func TestCreateClassInvalidVariant(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewClassService(repo, zap.NewNop())
	teacher := seedTeacher(st, "abu@schule.ch")

	_, err := svc.CreateClass(context.Background(), teacher.UserID, &dto.CreateClassRequest{
		Name: "ABU 1a", Variant: "efz", LearnerCount: 5,
	})
	if !errors.Is(err, ErrInvalidVariant) {
		t.Errorf("err = %v, erwartet ErrInvalidVariant", err)
	}
}

func TestGetClassDetailOwnership(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewClassService(repo, zap.NewNop())
	ctx := context.Background()

	owner := seedTeacher(st, "a@schule.ch")
	other := seedTeacher(st, "b@schule.ch")
	class := seedClass(st, owner.UserID, "bipla")

	if _, err := svc.GetClassDetail(ctx, owner.UserID, class.ClassID); err != nil {
		t.Fatalf("GetClassDetail als Eigentümerin: %v", err)
	}
	if _, err := svc.GetClassDetail(ctx, other.UserID, class.ClassID); !errors.Is(err, ErrNotClassOwner) {
		t.Errorf("fremde Klasse: err = %v, erwartet ErrNotClassOwner", err)
	}
	if _, err := svc.GetClassDetail(ctx, owner.UserID, "gibt-es-nicht"); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("unbekannte Klasse: err = %v, erwartet ErrClassNotFound", err)
	}
}

func TestListClasses(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewClassService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	seedClass(st, teacher.UserID, "bipla")
	seedClass(st, teacher.UserID, "eba")
	seedClass(st, seedTeacher(st, "x@schule.ch").UserID, "eba")

	classes, err := svc.ListClasses(ctx, teacher.UserID)
	if err != nil {
		t.Fatalf("ListClasses: %v", err)
	}
	if len(classes) != 2 {
		t.Errorf("len = %d, erwartet 2", len(classes))
	}
}
