package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/antrhizom/stud-i-agency-check/internal/model"
)

func TestCodeSheetCSV(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewExportService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	class := seedClass(st, teacher.UserID, "bipla")
	st.codes["FUCHS2"] = &model.LearnerCode{
		LearnerCodeID: "lc-1", ClassID: class.ClassID,
		Code: "FUCHS2", AnimalID: "fuchs", AnimalName: "Fuchs", AnimalEmoji: "🦊",
	}
	st.codes["EULE77"] = &model.LearnerCode{
		LearnerCodeID: "lc-2", ClassID: class.ClassID,
		Code: "EULE77", AnimalID: "eule", AnimalName: "Eule", AnimalEmoji: "🦉",
	}

	file, err := svc.CodeSheetCSV(ctx, teacher.UserID, class.ClassID)
	if err != nil {
		t.Fatalf("CodeSheetCSV: %v", err)
	}

	if !bytes.HasPrefix(file.Data, []byte("\uFEFF")) {
		t.Error("BOM fehlt")
	}
	wantName := "Lernende_ABU_1a_" + time.Now().Format("2006-01-02") + ".csv"
	if file.Filename != wantName {
		t.Errorf("Filename = %q, erwartet %q", file.Filename, wantName)
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(file.Data, []byte("\uFEFF"))))
	r.Comma = ';'
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("CSV lesen: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, erwartet 3", len(records))
	}
	wantHeader := []string{"Tiersymbol", "Emoji", "Code", "Name (bitte ausfüllen)"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("Header[%d] = %q, erwartet %q", i, records[0][i], col)
		}
	}
	// sortiert nach Tiername
	if records[1][0] != "Eule" || records[2][0] != "Fuchs" {
		t.Errorf("Zeilen nicht nach Tiername sortiert: %v", records)
	}
	if records[2][2] != "FUCHS2" {
		t.Errorf("Code-Spalte = %q, erwartet FUCHS2", records[2][2])
	}
}

func TestCodeSheetCSVOwnership(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewExportService(repo, zap.NewNop())
	ctx := context.Background()

	owner := seedTeacher(st, "a@schule.ch")
	other := seedTeacher(st, "b@schule.ch")
	class := seedClass(st, owner.UserID, "bipla")

	if _, err := svc.CodeSheetCSV(ctx, other.UserID, class.ClassID); !errors.Is(err, ErrNotClassOwner) {
		t.Errorf("fremde Klasse: err = %v, erwartet ErrNotClassOwner", err)
	}
	if _, err := svc.CodeSheetCSV(ctx, owner.UserID, "gibt-es-nicht"); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("unbekannte Klasse: err = %v, erwartet ErrClassNotFound", err)
	}
}

func TestClassOverviewXLSX(t *testing.T) {
	repo, st := newTestRepo()
	svc := NewExportService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := seedTeacher(st, "abu@schule.ch")
	class := seedClass(st, teacher.UserID, "eba")
	seedLearner(st, class.ClassID)

	file, err := svc.ClassOverviewXLSX(ctx, teacher.UserID, class.ClassID)
	if err != nil {
		t.Fatalf("ClassOverviewXLSX: %v", err)
	}
	if !strings.HasSuffix(file.Filename, ".xlsx") {
		t.Errorf("Filename = %q, erwartet .xlsx", file.Filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	if err != nil {
		t.Fatalf("Arbeitsmappe öffnen: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Klassenübersicht")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, erwartet Kopfzeile plus 1 Lernende", len(rows))
	}
	if rows[0][0] != "Lernende" {
		t.Errorf("Kopfzeile[0] = %q, erwartet Lernende", rows[0][0])
	}
	if !strings.Contains(rows[1][0], "Fuchs") {
		t.Errorf("Lernenden-Zeile = %q, erwartet Tierpseudonym", rows[1][0])
	}
}
