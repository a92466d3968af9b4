package domain

import (
	"context"
	"time"
)

type NotificationType string

const (
	NotificationLike       NotificationType = "LIKE"
	NotificationComment    NotificationType = "COMMENT"
	NotificationFollow     NotificationType = "FOLLOW"
	NotificationRoleChange NotificationType = "ROLE_CHANGE"
)

// Notification is a persisted engagement notification. Rows are created by
// the dispatcher and afterwards mutated only to flip IsRead.
type Notification struct {
	ID          int64
	RecipientID int64
	ActorID     int64
	Type        NotificationType
	EntityID    *int64 // Optional related entity (usually a post id)
	IsRead      bool
	CreatedAt   time.Time

	// Actor summary, filled on read paths
	Actor *User
}

// PushMessage is the serialized representation handed to the realtime
// channel. It mirrors what the REST layer would return for the notification
// so clients can render pushes without a follow-up fetch.
type PushMessage struct {
	ID               int64            `json:"id"`
	Type             NotificationType `json:"type"`
	EntityID         *int64           `json:"entity_id,omitempty"`
	ActorID          int64            `json:"actor_id"`
	ActorUsername    string           `json:"actor_username"`
	ActorDisplayName string           `json:"actor_display_name"`
	ActorAvatarURL   string           `json:"actor_avatar_url"`
	IsRead           bool             `json:"is_read"`
	CreatedAt        time.Time        `json:"created_at"`
}

// NotificationRepository defines the contract for notification persistence.
type NotificationRepository interface {
	// Store persists the notification and backfills ID and CreatedAt.
	Store(ctx context.Context, n *Notification) error

	// GetByID retrieves a single notification.
	// Returns ErrNotFound if it doesn't exist.
	GetByID(ctx context.Context, id int64) (Notification, error)

	// MarkRead flips is_read on one notification.
	MarkRead(ctx context.Context, id int64) error

	// MarkAllRead flips is_read on every unread notification of the user.
	MarkAllRead(ctx context.Context, userID int64) error

	// CountUnread returns the user's unread notification count.
	CountUnread(ctx context.Context, userID int64) (int64, error)

	// FetchByRecipient returns the user's notifications newest-first.
	FetchByRecipient(ctx context.Context, userID int64, p Pageable) ([]Notification, error)
}

// RealtimePublisher delivers a payload to a per-recipient realtime channel.
// Delivery is best-effort; failures are logged by the caller, never surfaced.
type RealtimePublisher interface {
	PublishToUser(ctx context.Context, username string, payload PushMessage) error
}

// NotificationUsecase is the dispatcher: it persists notification rows from
// engagement events and fans them out to the recipient's realtime channel.
type NotificationUsecase interface {
	// Notify persists a notification and pushes it to the recipient's
	// channel. A self-action (recipient == actor) is a silent no-op. The
	// push is fire-and-forget relative to the persisted write.
	Notify(ctx context.Context, recipientID, actorID int64, typ NotificationType, entityID *int64) error

	// MarkAsRead flips is_read; ErrForbidden when the notification does not
	// belong to userID. Marking an already-read row again is a no-op success.
	MarkAsRead(ctx context.Context, notificationID, userID int64) error

	// MarkAllAsRead bulk-flips the user's unread rows; zero matches is fine.
	MarkAllAsRead(ctx context.Context, userID int64) error

	// UnreadCount returns the unread count.
	UnreadCount(ctx context.Context, userID int64) (int64, error)

	// FetchByUser lists the user's notifications newest-first.
	FetchByUser(ctx context.Context, userID int64, p Pageable) ([]Notification, error)
}
