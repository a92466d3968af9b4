package model

import (
	"time"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Username    string    `gorm:"type:varchar(45);uniqueIndex;not null"`
	DisplayName string    `gorm:"column:display_name;type:varchar(90)"`
	AvatarURL   string    `gorm:"column:avatar_url;type:varchar(255)"`
	Role        string    `gorm:"type:varchar(20);not null;default:USER"`
	CreatedAt   time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:          m.ID,
		Username:    m.Username,
		DisplayName: m.DisplayName,
		AvatarURL:   m.AvatarURL,
		Role:        domain.Role(m.Role),
		CreatedAt:   m.CreatedAt,
	}
}
