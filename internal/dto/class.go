package dto

// CreateClassRequest legt eine Klasse mit N Zugangscodes an.
// Der Tierpool begrenzt die Klassengrösse auf 30.
type CreateClassRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Variant      string `json:"variant" binding:"required,oneof=bipla eba"`
	LearnerCount int    `json:"learner_count" binding:"required,min=1,max=30"`
}

// ClassResponse Klasse aus Sicht der Lehrperson
type ClassResponse struct {
	ClassID      string `json:"class_id"`
	Name         string `json:"name"`
	Variant      string `json:"variant"`
	LearnerCount int    `json:"learner_count"`
	CreatedAt    string `json:"created_at"`
}

// LearnerCodeResponse ein Pseudonym/Code-Paar
type LearnerCodeResponse struct {
	LearnerCodeID string  `json:"learner_code_id"`
	Code          string  `json:"code"`
	AnimalID      string  `json:"animal_id"`
	AnimalName    string  `json:"animal_name"`
	AnimalEmoji   string  `json:"animal_emoji"`
	Used          bool    `json:"used"`
	UserID        *string `json:"user_id,omitempty"`
}

// ClassDetailResponse Klasse mit allen Codes
type ClassDetailResponse struct {
	Class ClassResponse         `json:"class"`
	Codes []LearnerCodeResponse `json:"codes"`
}
