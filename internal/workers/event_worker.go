package workers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/metrics"
)

const (
	eventQueueSize = 1024
	eventBatchSize = 100
)

type eventWorker struct {
	writer *kafka.Writer
	ch     chan domain.EngagementEvent
}

var _ domain.EventPublisher = (*eventWorker)(nil)

// NewEventWorker ships engagement events to a kafka topic in batches. The
// stream is best-effort: write failures are logged and the batch dropped,
// never retried into the request path.
func NewEventWorker(brokers []string, topic string) *eventWorker {
	return &eventWorker{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
		ch: make(chan domain.EngagementEvent, eventQueueSize),
	}
}

// Send enqueues an event without blocking; a full queue drops it.
func (w *eventWorker) Send(ev domain.EngagementEvent) {
	select {
	case w.ch <- ev:
	default:
		metrics.EventsDroppedTotal.Inc()
		logrus.Warn("event queue full, engagement event dropped")
	}
}

func (w *eventWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	defer func() {
		if err := w.writer.Close(); err != nil {
			logrus.Warnf("failed to close kafka writer: %v", err)
		}
	}()

	batch := make([]domain.EngagementEvent, 0, eventBatchSize)
	for {
		select {
		case ev := <-w.ch:
			batch = append(batch, ev)
			if len(batch) == eventBatchSize {
				w.flush(ctx, batch)
				batch = make([]domain.EngagementEvent, 0, eventBatchSize)
			}
		case <-ticker.C:
			w.flush(ctx, batch)
			batch = batch[:0]
		case <-ctx.Done():
			logrus.Info("shutting down event worker, flushing remaining events...")
			w.flush(context.Background(), batch)
			return
		}
	}
}

func (w *eventWorker) flush(ctx context.Context, batch []domain.EngagementEvent) {
	if len(batch) == 0 {
		return
	}

	messages := make([]kafka.Message, 0, len(batch))
	for i := range batch {
		value, err := json.Marshal(&batch[i])
		if err != nil {
			logrus.Warnf("failed to marshal engagement event %s: %v", batch[i].ID, err)
			continue
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(batch[i].ID),
			Value: value,
		})
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := w.writer.WriteMessages(writeCtx, messages...); err != nil {
		logrus.Warnf("failed to write %d engagement events: %v", len(messages), err)
		return
	}
	metrics.EventsPublishedTotal.Add(float64(len(messages)))
}

type nopEventPublisher struct{}

// NewNopEventPublisher satisfies domain.EventPublisher when no broker is
// configured.
func NewNopEventPublisher() nopEventPublisher { return nopEventPublisher{} }

func (nopEventPublisher) Start(ctx context.Context)      {}
func (nopEventPublisher) Send(ev domain.EngagementEvent) {}
