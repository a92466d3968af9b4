package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TogglesTotal counts like/bookmark toggles by kind and resulting state.
	TogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "engagement_toggles_total",
		Help: "Number of like/bookmark toggles, labeled by kind and resulting state.",
	}, []string{"kind", "state"})

	// NotificationsTotal counts persisted notifications by type.
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_created_total",
		Help: "Number of persisted notifications, labeled by type.",
	}, []string{"type"})

	// PushesDroppedTotal counts realtime pushes dropped by a full queue or
	// an overrun shutdown drain.
	PushesDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notification_pushes_dropped_total",
		Help: "Number of realtime pushes dropped by a full queue or at shutdown.",
	})

	// EventsDroppedTotal counts engagement events dropped by a full queue.
	EventsDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "engagement_events_dropped_total",
		Help: "Number of engagement events dropped because the worker queue was full.",
	})

	// EventsPublishedTotal counts engagement events written to the stream.
	EventsPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "engagement_events_published_total",
		Help: "Number of engagement events written to the event stream.",
	})
)
