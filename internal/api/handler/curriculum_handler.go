package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/antrhizom/stud-i-agency-check/internal/curriculum"
	"github.com/antrhizom/stud-i-agency-check/internal/dto"
	"github.com/antrhizom/stud-i-agency-check/internal/progress"
	"github.com/antrhizom/stud-i-agency-check/pkg/response"
)

// CurriculumHandler Nur-Lese-Sichten auf den statischen Lehrplankatalog
type CurriculumHandler struct{}

// NewCurriculumHandler erzeugt den CurriculumHandler
func NewCurriculumHandler() *CurriculumHandler {
	return &CurriculumHandler{}
}

// GetCatalog liefert den Gesamtkatalog einer Variante
// GET /api/v1/curriculum/:variant
func (h *CurriculumHandler) GetCatalog(c *gin.Context) {
	cat, ok := curriculum.ByVariant(curriculum.Variant(c.Param("variant")))
	if !ok {
		response.NotFound(c, 12101, "Unbekannte Lehrplan-Variante")
		return
	}

	resp := dto.CatalogResponse{
		Variant:       string(cat.Variant),
		Themes:        themeSummaries(cat),
		LanguageModes: make([]dto.CatalogNodeResponse, 0, len(cat.LanguageModes)),
		KeySkills:     make([]dto.CatalogNodeResponse, 0, len(cat.KeySkills)),
		SocietyTopics: make([]dto.CatalogNodeResponse, 0, len(cat.SocietyTopics)),
	}
	for _, m := range cat.LanguageModes {
		resp.LanguageModes = append(resp.LanguageModes, dto.CatalogNodeResponse{ID: m.ID, Code: m.Code, Label: m.Label, Short: m.Short})
	}
	for _, sk := range cat.KeySkills {
		resp.KeySkills = append(resp.KeySkills, dto.CatalogNodeResponse{ID: sk.ID, Code: sk.Code, Label: sk.Label, Short: sk.Short})
	}
	for _, s := range cat.SocietyTopics {
		resp.SocietyTopics = append(resp.SocietyTopics, dto.CatalogNodeResponse{ID: s.ID, Label: s.Label})
	}
	for _, tr := range cat.TransversalTopics {
		resp.TransversalTopics = append(resp.TransversalTopics, dto.CatalogNodeResponse{ID: tr.ID, Label: tr.Label})
	}

	response.OK(c, resp)
}

// GetTheme liefert ein Thema mit Pflicht- und Wahllisten
// GET /api/v1/curriculum/:variant/themes/:id
func (h *CurriculumHandler) GetTheme(c *gin.Context) {
	cat, ok := curriculum.ByVariant(curriculum.Variant(c.Param("variant")))
	if !ok {
		response.NotFound(c, 12101, "Unbekannte Lehrplan-Variante")
		return
	}
	theme, ok := cat.Theme(c.Param("id"))
	if !ok {
		response.NotFound(c, 12102, "Unbekanntes Thema")
		return
	}

	detail := dto.ThemeDetailResponse{
		ThemeSummaryResponse: dto.ThemeSummaryResponse{
			ThemeID: theme.ID, Order: theme.Order, Year: theme.Year,
			Title: theme.Title, Subtitle: theme.Subtitle, Lessons: theme.Lessons,
		},
		MandatoryLanguageModes: theme.MandatoryLanguageModes,
		MandatorySociety:       theme.MandatorySociety,
		MandatoryKeySkills:     make([]dto.NodeRefResponse, 0, len(theme.MandatoryKeySkills)),
		OptionalLanguageModes:  nodeIDs(cat.OptionalNodes(theme.ID, curriculum.KindLanguageMode)),
		OptionalKeySkills:      nodeIDs(cat.OptionalNodes(theme.ID, curriculum.KindKeySkill)),
	}
	for _, ref := range theme.MandatoryKeySkills {
		detail.MandatoryKeySkills = append(detail.MandatoryKeySkills, dto.NodeRefResponse{ID: ref.ID, Round: string(ref.Round)})
	}
	for _, lb := range theme.LifeContexts {
		lc := dto.LifeContextResponse{ID: lb.ID, Title: lb.Title}
		for _, k := range lb.Competencies {
			lc.Competencies = append(lc.Competencies, dto.CompetencyResponse{ID: k.ID, Text: k.Text, OptionalModes: k.OptionalModes})
		}
		detail.LifeContexts = append(detail.LifeContexts, lc)
	}

	response.OK(c, detail)
}

// GetVocabulary liefert die festen Eintragsvokabulare
// GET /api/v1/curriculum/vocabulary
func (h *CurriculumHandler) GetVocabulary(c *gin.Context) {
	resp := dto.VocabularyResponse{
		HowMethods:      curriculum.HowMethods,
		StatusOptions:   make([]dto.StatusOptionResponse, 0, len(curriculum.StatusOptions)),
		ContextOptions:  make([]dto.ContextOptionResponse, 0, len(curriculum.ContextOptions)),
		RewardThreshold: progress.RewardThreshold,
		RewardEmoji:     curriculum.GrootReward.Emoji,
	}
	for _, s := range curriculum.StatusOptions {
		resp.StatusOptions = append(resp.StatusOptions, dto.StatusOptionResponse{ID: s.ID, Label: s.Label})
	}
	for _, co := range curriculum.ContextOptions {
		resp.ContextOptions = append(resp.ContextOptions, dto.ContextOptionResponse{ID: co.ID, Label: co.Label, Emoji: co.Emoji})
	}

	response.OK(c, resp)
}

func themeSummaries(cat *curriculum.Catalog) []dto.ThemeSummaryResponse {
	out := make([]dto.ThemeSummaryResponse, 0, len(cat.Themes))
	for _, t := range cat.Themes {
		out = append(out, dto.ThemeSummaryResponse{
			ThemeID: t.ID, Order: t.Order, Year: t.Year,
			Title: t.Title, Subtitle: t.Subtitle, Lessons: t.Lessons,
		})
	}
	return out
}

func nodeIDs(refs []curriculum.NodeRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.ID)
	}
	return out
}
