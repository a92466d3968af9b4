package model

import (
	"time"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type Notification struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	RecipientID int64     `gorm:"column:recipient_id;not null;index"`
	ActorID     int64     `gorm:"column:actor_id;not null"`
	Type        string    `gorm:"type:varchar(20);not null"`
	EntityID    *int64    `gorm:"column:entity_id"`
	IsRead      bool      `gorm:"column:is_read;not null;default:false;index"`
	CreatedAt   time.Time `gorm:"type:datetime"`
}

func (Notification) TableName() string {
	return "notifications"
}

func NewNotificationFromDomain(n *domain.Notification) *Notification {
	return &Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		ActorID:     n.ActorID,
		Type:        string(n.Type),
		EntityID:    n.EntityID,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
}

func (m *Notification) ToDomain() domain.Notification {
	return domain.Notification{
		ID:          m.ID,
		RecipientID: m.RecipientID,
		ActorID:     m.ActorID,
		Type:        domain.NotificationType(m.Type),
		EntityID:    m.EntityID,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}
