package dto

// ThemeSummaryResponse Themenkopf für Übersichten
type ThemeSummaryResponse struct {
	ThemeID  string `json:"theme_id"`
	Order    int    `json:"order"`
	Year     int    `json:"year"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Lessons  int    `json:"lessons,omitempty"`
}

// NodeRefResponse rundenqualifizierte Knotenreferenz
type NodeRefResponse struct {
	ID    string `json:"id"`
	Round string `json:"round"`
}

// CompetencyResponse eba-Kompetenz innerhalb eines Lebensbezugs
type CompetencyResponse struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	OptionalModes []string `json:"optional_modes,omitempty"`
}

// LifeContextResponse Lebensbezug mit seinen Kompetenzen (nur eba)
type LifeContextResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Competencies []CompetencyResponse `json:"competencies"`
}

// ThemeDetailResponse vollständiges Thema mit Pflicht- und Wahllisten
type ThemeDetailResponse struct {
	ThemeSummaryResponse
	MandatoryLanguageModes []string              `json:"mandatory_language_modes"`
	MandatorySociety       []string              `json:"mandatory_society"`
	MandatoryKeySkills     []NodeRefResponse     `json:"mandatory_key_skills"`
	OptionalLanguageModes  []string              `json:"optional_language_modes"`
	OptionalKeySkills      []string              `json:"optional_key_skills"`
	LifeContexts           []LifeContextResponse `json:"life_contexts,omitempty"`
}

// CatalogNodeResponse Katalogknoten (Sprachmodus, Kompetenz, Thema)
type CatalogNodeResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code,omitempty"`
	Label string `json:"label"`
	Short string `json:"short,omitempty"`
}

// CatalogResponse Gesamtkatalog einer Variante
type CatalogResponse struct {
	Variant           string                 `json:"variant"`
	Themes            []ThemeSummaryResponse `json:"themes"`
	LanguageModes     []CatalogNodeResponse  `json:"language_modes"`
	KeySkills         []CatalogNodeResponse  `json:"key_skills"`
	SocietyTopics     []CatalogNodeResponse  `json:"society_topics"`
	TransversalTopics []CatalogNodeResponse  `json:"transversal_topics,omitempty"`
}

// StatusOptionResponse Selbsteinschätzungs-Option (eba)
type StatusOptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ContextOptionResponse Übungsort-Option
type ContextOptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// VocabularyResponse feste Vokabulare für die Eintragsmaske
type VocabularyResponse struct {
	HowMethods      []string                `json:"how_methods"`
	StatusOptions   []StatusOptionResponse  `json:"status_options"`
	ContextOptions  []ContextOptionResponse `json:"context_options"`
	RewardThreshold int                     `json:"reward_threshold"`
	RewardEmoji     string                  `json:"reward_emoji"`
}
