package response

import "github.com/Guyuepp/Go-Social-Blog/domain"

type Notification struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	EntityID  *int64 `json:"entity_id,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`

	Actor *User `json:"actor,omitempty"`
}

// NewNotificationFromDomain: Domain -> Response
func NewNotificationFromDomain(n *domain.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Type:      string(n.Type),
		EntityID:  n.EntityID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(DateTimeFormat),
		Actor:     NewUserFromDomain(n.Actor),
	}
}

func NewNotificationListFromDomain(items []domain.Notification) []Notification {
	res := make([]Notification, len(items))
	for i := range items {
		res[i] = NewNotificationFromDomain(&items[i])
	}
	return res
}
