package model

import "time"

// PracticeEntry Übungseintrag eines Lernenden, Tabelle practice_entries.
// Bipla-Einträge schneiden die Pflichtlisten ihres Themas als TEXT[]-Spalten
// mit (Schlüsselkompetenzen als zusammengesetzte Referenz "3.2.2-R1"),
// eba-Einträge referenzieren genau einen Knoten.
type PracticeEntry struct {
	EntryID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"entry_id"`
	UserID  string `gorm:"type:uuid;not null;index"                       json:"user_id"`
	ClassID string `gorm:"type:uuid;not null;index"                       json:"class_id"`
	Variant string `gorm:"type:varchar(16);not null"                      json:"variant"`
	Type    string `gorm:"type:varchar(32);not null"                      json:"type"`
	ThemeID string `gorm:"column:theme_id;type:varchar(32);not null"      json:"theme_id"`

	// bipla
	MandatoryLanguageModes  StringArray `gorm:"column:mandatory_language_modes;type:text[]"  json:"mandatory_language_modes,omitempty"`
	MandatorySociety        StringArray `gorm:"column:mandatory_society;type:text[]"         json:"mandatory_society,omitempty"`
	MandatoryKeySkills      StringArray `gorm:"column:mandatory_key_skills;type:text[]"      json:"mandatory_key_skills,omitempty"`
	AdditionalLanguageModes StringArray `gorm:"column:additional_language_modes;type:text[]" json:"additional_language_modes,omitempty"`
	AdditionalKeySkills     StringArray `gorm:"column:additional_key_skills;type:text[]"     json:"additional_key_skills,omitempty"`

	// eba
	CompetencyID          *string     `gorm:"column:competency_id;type:varchar(32)"       json:"competency_id,omitempty"`
	KeySkillID            *string     `gorm:"column:key_skill_id;type:varchar(32)"        json:"key_skill_id,omitempty"`
	TransversalID         *string     `gorm:"column:transversal_id;type:varchar(32)"      json:"transversal_id,omitempty"`
	OptionalLanguageModes StringArray `gorm:"column:optional_language_modes;type:text[]"  json:"optional_language_modes,omitempty"`
	Status                *string     `gorm:"type:varchar(32)"                            json:"status,omitempty"`

	HowMethod string  `gorm:"type:varchar(32);not null"  json:"how_method"`
	HowCount  int     `gorm:"not null;default:1"         json:"how_count"`
	Context   *string `gorm:"type:varchar(32)"           json:"context,omitempty"`
	Note      *string `gorm:"type:text"                  json:"note,omitempty"`

	TeacherNote   *string    `gorm:"type:text" json:"teacher_note,omitempty"`
	TeacherNoteAt *time.Time `json:"teacher_note_at,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName legt den Tabellennamen fest
func (PracticeEntry) TableName() string { return "practice_entries" }
