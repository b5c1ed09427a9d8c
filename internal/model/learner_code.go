package model

// LearnerCode anonymer Zugangscode mit Tierpseudonym, Tabelle learner_codes.
// UserID wird beim Einlösen gesetzt, die Zuordnung bleibt danach bestehen.
type LearnerCode struct {
	LearnerCodeID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"learner_code_id"`
	ClassID       string  `gorm:"type:uuid;not null"                             json:"class_id"`
	Code          string  `gorm:"type:varchar(6);not null;uniqueIndex"           json:"code"`
	AnimalID      string  `gorm:"type:varchar(32);not null"                      json:"animal_id"`
	AnimalName    string  `gorm:"type:varchar(50);not null"                      json:"animal_name"`
	AnimalEmoji   string  `gorm:"type:varchar(16);not null"                      json:"animal_emoji"`
	Used          bool    `gorm:"not null;default:false"                         json:"used"`
	UserID        *string `gorm:"type:uuid"                                      json:"user_id,omitempty"`
	BaseModel

	Class *Class `gorm:"foreignKey:ClassID;references:ClassID" json:"class,omitempty"`
}

// TableName legt den Tabellennamen fest
func (LearnerCode) TableName() string { return "learner_codes" }
