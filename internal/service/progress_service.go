package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antrhizom/stud-i-agency-check/internal/curriculum"
	"github.com/antrhizom/stud-i-agency-check/internal/dto"
	"github.com/antrhizom/stud-i-agency-check/internal/model"
	"github.com/antrhizom/stud-i-agency-check/internal/progress"
	"github.com/antrhizom/stud-i-agency-check/internal/repository"
)

// ProgressService Fortschritts- und Zirkularitätsansichten
type ProgressService interface {
	// OwnDashboard berechnet die Ansicht für den eingeloggten Lernenden
	OwnDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
	// LearnerDashboard berechnet dieselbe Ansicht für die Lehrperson,
	// beschränkt auf deren eigene Lernende
	LearnerDashboard(ctx context.Context, teacherID, learnerID string) (*dto.DashboardResponse, error)
}

type progressService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProgressService erzeugt eine ProgressService-Instanz
func NewProgressService(repo *repository.Repository, logger *zap.Logger) ProgressService {
	return &progressService{repo: repo, logger: logger}
}

func (s *progressService) OwnDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	return s.dashboard(ctx, userID)
}

func (s *progressService) LearnerDashboard(ctx context.Context, teacherID, learnerID string) (*dto.DashboardResponse, error) {
	if err := checkTeacherScope(ctx, s.repo, teacherID, learnerID); err != nil {
		return nil, err
	}
	return s.dashboard(ctx, learnerID)
}

func (s *progressService) dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
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

	rows, err := s.repo.PracticeEntry.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("eintragsabfrage fehlgeschlagen", zap.Error(err))
		return nil, err
	}
	entries := toProgressEntries(rows)

	voluntary := progress.VoluntaryCount(cat, entries)
	counts := progress.ThemeEntryCounts(cat, entries)

	resp := &dto.DashboardResponse{
		Variant:        class.Variant,
		TotalEntries:   len(entries),
		VoluntaryCount: voluntary,
		RewardEligible: progress.RewardEligible(voluntary),
		SkillProgress:  buildSkillProgress(cat, entries),
		Themes:         buildThemeCompletions(cat, entries, counts),
		Circularity:    buildCircularityGrid(cat, entries),
	}
	if resp.RewardEligible {
		resp.RewardEmoji = curriculum.GrootReward.Emoji
	}
	return resp, nil
}

// toProgressEntries entkoppelt die Persistenzzeilen vom Aggregator
func toProgressEntries(rows []model.PracticeEntry) []progress.Entry {
	entries := make([]progress.Entry, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		e := progress.Entry{
			ID:                      r.EntryID,
			Variant:                 curriculum.Variant(r.Variant),
			Type:                    r.Type,
			ThemeID:                 r.ThemeID,
			MandatoryLanguageModes:  r.MandatoryLanguageModes,
			MandatorySociety:        r.MandatorySociety,
			MandatoryKeySkills:      r.MandatoryKeySkills,
			AdditionalLanguageModes: r.AdditionalLanguageModes,
			AdditionalKeySkills:     r.AdditionalKeySkills,
			OptionalLanguageModes:   r.OptionalLanguageModes,
			HowMethod:               r.HowMethod,
			HowCount:                r.HowCount,
		}
		if r.CompetencyID != nil {
			e.CompetencyID = *r.CompetencyID
		}
		if r.KeySkillID != nil {
			e.KeySkillID = *r.KeySkillID
		}
		if r.TransversalID != nil {
			e.TransversalID = *r.TransversalID
		}
		if r.Status != nil {
			e.Status = *r.Status
		}
		if r.Context != nil {
			e.Context = *r.Context
		}
		if r.Note != nil {
			e.Note = *r.Note
		}
		if !r.CreatedAt.IsZero() {
			t := r.CreatedAt
			e.CreatedAt = &t
		}
		entries = append(entries, e)
	}
	return entries
}

func buildSkillProgress(cat *curriculum.Catalog, entries []progress.Entry) []dto.SkillProgressResponse {
	views := progress.AllSkillProgress(cat, entries)
	out := make([]dto.SkillProgressResponse, 0, len(views))
	for _, v := range views {
		sk, _ := cat.KeySkill(v.SkillID)
		occ := make([]dto.OccurrenceResponse, 0, len(v.Occurrences))
		for _, o := range v.Occurrences {
			occ = append(occ, dto.OccurrenceResponse{
				ThemeID:    o.ThemeID,
				ThemeTitle: o.ThemeTitle,
				Round:      string(o.Round),
				Completed:  progress.OccurrenceCompleted(cat, v.SkillID, o, entries),
			})
		}
		out = append(out, dto.SkillProgressResponse{
			SkillID:     v.SkillID,
			Code:        sk.Code,
			Short:       sk.Short,
			Total:       v.Total,
			Completed:   v.Completed,
			Percent:     v.Percent,
			Occurrences: occ,
		})
	}
	return out
}

func buildThemeCompletions(cat *curriculum.Catalog, entries []progress.Entry, counts map[string]int) []dto.ThemeCompletionResponse {
	out := make([]dto.ThemeCompletionResponse, 0, len(cat.Themes))
	for _, t := range cat.Themes {
		s := progress.ThemeCompletionSummary(cat, t.ID, entries)
		out = append(out, dto.ThemeCompletionResponse{
			ThemeID:      t.ID,
			Title:        t.Title,
			EntryCount:   counts[t.ID],
			Society:      dto.CategoryCompletionResponse{Done: s.Society.Done, Total: s.Society.Total},
			LanguageMode: dto.CategoryCompletionResponse{Done: s.LanguageMode.Done, Total: s.LanguageMode.Total},
			KeySkill:     dto.CategoryCompletionResponse{Done: s.KeySkill.Done, Total: s.KeySkill.Total},
		})
	}
	return out
}

func buildCircularityGrid(cat *curriculum.Catalog, entries []progress.Entry) dto.CircularityGridResponse {
	grid := progress.CircularityGrid(cat, entries)

	rows := func(in []progress.GridRow, label func(string) string) []dto.GridRowResponse {
		out := make([]dto.GridRowResponse, 0, len(in))
		for _, r := range in {
			cells := make([]dto.GridCellResponse, 0, len(r.Cells))
			for _, c := range r.Cells {
				cells = append(cells, dto.GridCellResponse{
					ThemeID: c.ThemeID,
					Round:   string(c.Round),
					Count:   c.Count,
				})
			}
			out = append(out, dto.GridRowResponse{NodeID: r.NodeID, Label: label(r.NodeID), Cells: cells})
		}
		return out
	}

	return dto.CircularityGridResponse{
		Society: rows(grid.Society, func(id string) string {
			if s, ok := cat.SocietyTopic(id); ok {
				return s.Label
			}
			return id
		}),
		LanguageModes: rows(grid.LanguageModes, func(id string) string {
			if m, ok := cat.LanguageMode(id); ok {
				return m.Label
			}
			return id
		}),
		KeySkills: rows(grid.KeySkills, func(id string) string {
			if s, ok := cat.KeySkill(id); ok {
				return s.Label
			}
			return id
		}),
	}
}
