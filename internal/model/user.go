package model

// Rollen
const (
	RoleTeacher = "teacher"
	RoleLearner = "learner"
)

// User Lehrperson oder Lernende:r, Tabelle users.
// Lernende sind anonym und tragen nur ihr Tierpseudonym.
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Role         string  `gorm:"type:varchar(16);not null"                      json:"role"`
	Email        *string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	PasswordHash *string `gorm:"type:varchar(255)"                              json:"-"`
	DisplayName  string  `gorm:"type:varchar(100);not null"                     json:"display_name"`
	AnimalEmoji  *string `gorm:"type:varchar(16)"                               json:"animal_emoji,omitempty"`
	ClassID      *string `gorm:"type:uuid"                                      json:"class_id,omitempty"`
	BaseModel

	Class *Class `gorm:"foreignKey:ClassID;references:ClassID" json:"class,omitempty"`
}

// TableName legt den Tabellennamen fest
func (User) TableName() string { return "users" }
