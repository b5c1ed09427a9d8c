package model

// Class Schulklasse einer Lehrperson, Tabelle classes.
// Variant legt fest, welcher Lehrplan-Katalog für die Klasse gilt.
type Class struct {
	ClassID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	TeacherID string `gorm:"type:uuid;not null"                             json:"teacher_id"`
	Name      string `gorm:"type:varchar(100);not null"                     json:"name"`
	Variant   string `gorm:"type:varchar(16);not null"                      json:"variant"`
	BaseModel

	Teacher *User `gorm:"foreignKey:TeacherID;references:UserID" json:"teacher,omitempty"`
}

// TableName legt den Tabellennamen fest
func (Class) TableName() string { return "classes" }
