package model

import "golang.org/x/crypto/bcrypt"

// User represents an actor in the system. The password column only ever holds
// a bcrypt hash and is excluded from every outward representation.
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email" validate:"required,email,max=100"`
	Password string `gorm:"type:varchar(255);not null" json:"-" validate:"required,max=255"` // Hidden from JSON
	Role     string `gorm:"type:varchar(50);not null" json:"role" validate:"required,max=50"`
	Logs     []Log  `gorm:"foreignKey:UserID" json:"logs,omitempty" validate:"-"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without the password column)
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Logs  []Log  `json:"logs,omitempty"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Logs:  u.Logs,
	}
}
