package models

// User is a registered community member
type User struct {
	ID           uint    `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Email        string  `json:"email" gorm:"column:email;size:255;uniqueIndex;not null"` // Ensure email is unique across all users
	Nickname     string  `json:"nickname" gorm:"column:nickname;size:50;uniqueIndex;not null"`
	Password     string  `json:"-" gorm:"column:password;size:255;not null"` // Store hashed password, ignore for JSON serialization
	ProfileImage *string `json:"profile_image,omitempty" gorm:"column:profile_image;size:255"`
}

// TableName overrides the default GORM table name
func (User) TableName() string { return "users" }

// SignupRequest defines the request body for registering a new account
type SignupRequest struct {
	Email        string  `json:"email" validate:"required"`
	Password     string  `json:"password" validate:"required"`
	Nickname     string  `json:"nickname" validate:"required"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// LoginRequest defines the request body for starting a session
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for updating nickname/profile image.
// Nickname is a pointer so a missing field can be told apart from an empty one.
type UpdateProfileRequest struct {
	Nickname     *string `json:"nickname"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// UpdatePasswordRequest defines the request body for changing the password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}
