package dto

// OccurrenceResponse Vorkommen einer Schlüsselkompetenz in einem Thema
type OccurrenceResponse struct {
	ThemeID    string `json:"theme_id"`
	ThemeTitle string `json:"theme_title"`
	Round      string `json:"round"`
	Completed  bool   `json:"completed"`
}

// SkillProgressResponse Fortschritt einer Schlüsselkompetenz
type SkillProgressResponse struct {
	SkillID     string               `json:"skill_id"`
	Code        string               `json:"code"`
	Short       string               `json:"short,omitempty"`
	Total       int                  `json:"total"`
	Completed   int                  `json:"completed"`
	Percent     int                  `json:"percent"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

// CategoryCompletionResponse erledigt/gefordert pro Kategorie
type CategoryCompletionResponse struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// ThemeCompletionResponse Pflicht-Abdeckung eines Themas
type ThemeCompletionResponse struct {
	ThemeID      string                     `json:"theme_id"`
	Title        string                     `json:"title"`
	EntryCount   int                        `json:"entry_count"`
	Society      CategoryCompletionResponse `json:"society"`
	LanguageMode CategoryCompletionResponse `json:"language_mode"`
	KeySkill     CategoryCompletionResponse `json:"key_skill"`
}

// GridCellResponse Zelle im Zirkularitätsraster
type GridCellResponse struct {
	ThemeID string `json:"theme_id"`
	Round   string `json:"round"`
	Count   int    `json:"count"`
}

// GridRowResponse Zeile im Zirkularitätsraster
type GridRowResponse struct {
	NodeID string             `json:"node_id"`
	Label  string             `json:"label"`
	Cells  []GridCellResponse `json:"cells"`
}

// CircularityGridResponse vollständiges Raster
type CircularityGridResponse struct {
	Society       []GridRowResponse `json:"society"`
	LanguageModes []GridRowResponse `json:"language_modes"`
	KeySkills     []GridRowResponse `json:"key_skills"`
}

// DashboardResponse aggregierte Fortschrittsansicht eines Lernenden
type DashboardResponse struct {
	Variant        string                    `json:"variant"`
	TotalEntries   int                       `json:"total_entries"`
	VoluntaryCount int                       `json:"voluntary_count"`
	RewardEligible bool                      `json:"reward_eligible"`
	RewardEmoji    string                    `json:"reward_emoji,omitempty"`
	SkillProgress  []SkillProgressResponse   `json:"skill_progress"`
	Themes         []ThemeCompletionResponse `json:"themes"`
	Circularity    CircularityGridResponse   `json:"circularity"`
}
