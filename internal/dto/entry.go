package dto

import "time"

// CreateEntryRequest neuer Übungseintrag. Welche Felder gelten, hängt
// von der Lehrplan-Variante der Klasse ab:
// bipla braucht nur das Thema plus freiwillige Zusatzlisten (die
// Pflichtlisten werden serverseitig mitgeschrieben), eba braucht Typ
// und genau eine Knotenreferenz.
type CreateEntryRequest struct {
	ThemeID string `json:"theme_id" binding:"required"`

	// bipla
	AdditionalLanguageModes []string `json:"additional_language_modes"`
	AdditionalKeySkills     []string `json:"additional_key_skills"`

	// eba
	Type                  string   `json:"type"`
	CompetencyID          string   `json:"competency_id"`
	KeySkillID            string   `json:"key_skill_id"`
	TransversalID         string   `json:"transversal_id"`
	OptionalLanguageModes []string `json:"optional_language_modes"`
	Status                string   `json:"status"`

	HowMethod string `json:"how_method" binding:"required"`
	HowCount  int    `json:"how_count" binding:"required,min=1"`
	Context   string `json:"context"`
	Note      string `json:"note"`
}

// TeacherNoteRequest setzt oder löscht die Lehrpersonen-Notiz.
// Leerer Text löscht die Notiz.
type TeacherNoteRequest struct {
	Note string `json:"note"`
}

// EntryResponse Übungseintrag in API-Form
type EntryResponse struct {
	EntryID string `json:"entry_id"`
	UserID  string `json:"user_id"`
	Variant string `json:"variant"`
	Type    string `json:"type"`
	ThemeID string `json:"theme_id"`

	MandatoryLanguageModes  []string `json:"mandatory_language_modes,omitempty"`
	MandatorySociety        []string `json:"mandatory_society,omitempty"`
	MandatoryKeySkills      []string `json:"mandatory_key_skills,omitempty"`
	AdditionalLanguageModes []string `json:"additional_language_modes,omitempty"`
	AdditionalKeySkills     []string `json:"additional_key_skills,omitempty"`

	CompetencyID          *string  `json:"competency_id,omitempty"`
	KeySkillID            *string  `json:"key_skill_id,omitempty"`
	TransversalID         *string  `json:"transversal_id,omitempty"`
	OptionalLanguageModes []string `json:"optional_language_modes,omitempty"`
	Status                *string  `json:"status,omitempty"`

	HowMethod string  `json:"how_method"`
	HowCount  int     `json:"how_count"`
	Context   *string `json:"context,omitempty"`
	Note      *string `json:"note,omitempty"`

	TeacherNote   *string    `json:"teacher_note,omitempty"`
	TeacherNoteAt *time.Time `json:"teacher_note_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
