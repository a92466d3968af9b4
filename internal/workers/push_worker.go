package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/metrics"
)

const pushQueueSize = 1024

type pushWorker struct {
	publisher domain.RealtimePublisher
	ch        chan domain.PushTask
}

var _ domain.PushWorker = (*pushWorker)(nil)

// NewPushWorker creates the background fan-out worker. The dispatcher hands
// it tasks after the notification row is persisted; delivery never blocks or
// fails the originating request.
func NewPushWorker(publisher domain.RealtimePublisher) *pushWorker {
	return &pushWorker{
		publisher: publisher,
		ch:        make(chan domain.PushTask, pushQueueSize),
	}
}

// Send enqueues a push without blocking. A full queue drops the task: the
// persisted notification is the durable record, the push is best-effort.
func (w *pushWorker) Send(task domain.PushTask) {
	select {
	case w.ch <- task:
	default:
		metrics.PushesDroppedTotal.Inc()
		logrus.Warnf("push queue full, dropped realtime push for %s", task.Username)
	}
}

func (w *pushWorker) Start(ctx context.Context) {
	for {
		select {
		case task := <-w.ch:
			w.deliver(ctx, task)
		case <-ctx.Done():
			logrus.Info("shutting down push worker, draining queue...")
			w.drain()
			return
		}
	}
}

func (w *pushWorker) deliver(ctx context.Context, task domain.PushTask) {
	deliverCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := w.publisher.PublishToUser(deliverCtx, task.Username, task.Message); err != nil {
		logrus.Warnf("failed to push notification to %s: %v", task.Username, err)
	}
}

func (w *pushWorker) drain() {
	deadline := time.Now().Add(2 * time.Second)
	for {
		select {
		case task := <-w.ch:
			if time.Now().After(deadline) {
				dropped := len(w.ch) + 1
				metrics.PushesDroppedTotal.Add(float64(dropped))
				logrus.Warnf("drain deadline passed, dropped %d queued pushes (first for %s)", dropped, task.Username)
				return
			}
			w.deliver(context.Background(), task)
		default:
			return
		}
	}
}
