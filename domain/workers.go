package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PushTask carries one realtime delivery to a recipient's channel.
type PushTask struct {
	Username string
	Message  PushMessage
}

// PushWorker decouples realtime delivery from the request path. Send never
// blocks: a full queue drops the task, since persistence is the durable
// record and the push is best-effort.
type PushWorker interface {
	Start(ctx context.Context)

	Send(task PushTask)
}

type EventType string

const (
	EventLike     EventType = "like"
	EventUnlike   EventType = "unlike"
	EventBookmark EventType = "bookmark"
	EventComment  EventType = "comment"
	EventFollow   EventType = "follow"
	EventView     EventType = "view"
)

// EngagementEvent is one entry of the best-effort engagement stream consumed
// by downstream analytics.
type EngagementEvent struct {
	ID       string    `json:"id"`
	Type     EventType `json:"type"`
	ActorID  int64     `json:"actor_id"`
	PostID   int64     `json:"post_id,omitempty"`
	TargetID int64     `json:"target_id,omitempty"`
	At       time.Time `json:"at"`
}

// NewEngagementEvent stamps a fresh event with a unique id and UTC time.
func NewEngagementEvent(typ EventType, actorID, postID int64) EngagementEvent {
	return EngagementEvent{
		ID:      uuid.NewString(),
		Type:    typ,
		ActorID: actorID,
		PostID:  postID,
		At:      time.Now().UTC(),
	}
}

// EventPublisher ships engagement events to the stream. Send never blocks.
type EventPublisher interface {
	Start(ctx context.Context)

	Send(ev EngagementEvent)
}
