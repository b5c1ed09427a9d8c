package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antrhizom/stud-i-agency-check/internal/curriculum"
	"github.com/antrhizom/stud-i-agency-check/internal/model"
	"github.com/antrhizom/stud-i-agency-check/internal/progress"
	"github.com/antrhizom/stud-i-agency-check/internal/repository"
)

// ExportFile fertige Exportdatei für den Download
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService Datei-Exporte für Lehrpersonen
type ExportService interface {
	// CodeSheetCSV erzeugt die Codeliste zum Austeilen an die Klasse
	CodeSheetCSV(ctx context.Context, teacherID, classID string) (*ExportFile, error)
	// ClassOverviewXLSX erzeugt die Fortschrittsübersicht aller Lernenden
	ClassOverviewXLSX(ctx context.Context, teacherID, classID string) (*ExportFile, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService erzeugt eine ExportService-Instanz
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) CodeSheetCSV(ctx context.Context, teacherID, classID string) (*ExportFile, error) {
	class, err := s.ownedClass(ctx, teacherID, classID)
	if err != nil {
		return nil, err
	}
	codes, err := s.repo.LearnerCode.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	// BOM, damit Excel die Umlaute und Emojis korrekt liest
	buf.WriteString("\uFEFF")
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	records := [][]string{{"Tiersymbol", "Emoji", "Code", "Name (bitte ausfüllen)"}}
	for _, c := range codes {
		records = append(records, []string{c.AnimalName, c.AnimalEmoji, c.Code, ""})
	}
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    exportFilename("Lernende", class.Name, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func (s *exportService) ClassOverviewXLSX(ctx context.Context, teacherID, classID string) (*ExportFile, error) {
	class, err := s.ownedClass(ctx, teacherID, classID)
	if err != nil {
		return nil, err
	}
	cat, ok := curriculum.ByVariant(curriculum.Variant(class.Variant))
	if !ok {
		return nil, ErrInvalidVariant
	}
	learners, err := s.repo.User.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Klassenübersicht"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"Lernende", "Einträge", "Freiwillig", "Belohnung"}
	for _, sk := range cat.KeySkills {
		header = append(header, sk.Code+" %")
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return nil, err
	}

	for i, learner := range learners {
		rows, err := s.repo.PracticeEntry.ListByUser(ctx, learner.UserID)
		if err != nil {
			return nil, err
		}
		entries := toProgressEntries(rows)
		voluntary := progress.VoluntaryCount(cat, entries)

		reward := ""
		if progress.RewardEligible(voluntary) {
			reward = curriculum.GrootReward.Emoji
		}
		row := []interface{}{learnerLabel(&learner), len(entries), voluntary, reward}
		for _, v := range progress.AllSkillProgress(cat, entries) {
			row = append(row, v.Percent)
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("xlsx-export fehlgeschlagen", zap.Error(err))
		return nil, err
	}
	return &ExportFile{
		Filename:    exportFilename("Uebersicht", class.Name, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func (s *exportService) ownedClass(ctx context.Context, teacherID, classID string) (*model.Class, error) {
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

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func learnerLabel(u *model.User) string {
	if u.AnimalEmoji != nil {
		return *u.AnimalEmoji + " " + u.DisplayName
	}
	return u.DisplayName
}

// exportFilename baut einen dateisystem-sicheren Namen mit Datumsstempel
func exportFilename(prefix, className, ext string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ' ':
			return '_'
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, className)
	return fmt.Sprintf("%s_%s_%s.%s", prefix, name, time.Now().Format("2006-01-02"), ext)
}
