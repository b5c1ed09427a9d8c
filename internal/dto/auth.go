package dto

// TeacherLoginRequest E-Mail-Login für Lehrpersonen
type TeacherLoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// CodeLoginRequest anonymer Login per Zugangscode
type CodeLoginRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// RegisterTeacherRequest Registrierung einer Lehrperson
type RegisterTeacherRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required,max=100"`
}

// RefreshRequest Token-Erneuerung
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LoginResponse Token-Paar plus Profil
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"` // Sekunden bis zum Ablauf des Access-Tokens
	User         UserResponse `json:"user"`
}

// UserResponse öffentliches Benutzerprofil
type UserResponse struct {
	UserID      string  `json:"user_id"`
	Role        string  `json:"role"`
	DisplayName string  `json:"display_name"`
	AnimalEmoji *string `json:"animal_emoji,omitempty"`
	ClassID     *string `json:"class_id,omitempty"`
	Variant     string  `json:"variant,omitempty"`
}
