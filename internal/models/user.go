package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	BaseModel

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null;default:'user'" json:"role"`
}
