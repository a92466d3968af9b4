package workers_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/domain/mocks"
	"github.com/Guyuepp/Go-Social-Blog/internal/metrics"
	"github.com/Guyuepp/Go-Social-Blog/internal/workers"
)

func TestPushWorker_DeliversTask(t *testing.T) {
	publisher := new(mocks.RealtimePublisher)
	delivered := make(chan struct{})

	publisher.On("PublishToUser", mock.Anything, "author", mock.MatchedBy(func(msg domain.PushMessage) bool {
		return msg.ID == 5 && msg.Type == domain.NotificationComment
	})).Run(func(args mock.Arguments) {
		close(delivered)
	}).Return(nil).Once()

	w := workers.NewPushWorker(publisher)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	w.Send(domain.PushTask{
		Username: "author",
		Message:  domain.PushMessage{ID: 5, Type: domain.NotificationComment},
	})

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("push was not delivered")
	}
	publisher.AssertExpectations(t)
}

func TestPushWorker_SendNeverBlocks(t *testing.T) {
	// No Start loop running: the queue fills up and Send must drop
	// instead of blocking the caller.
	publisher := new(mocks.RealtimePublisher)
	w := workers.NewPushWorker(publisher)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 3000; i++ {
			w.Send(domain.PushTask{Username: "author"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Send blocked on a full queue")
	}
}

func TestPushWorker_DrainsOnShutdown(t *testing.T) {
	publisher := new(mocks.RealtimePublisher)
	delivered := make(chan string, 2)

	publisher.On("PublishToUser", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			delivered <- args.String(1)
		}).Return(nil)

	w := workers.NewPushWorker(publisher)

	// Enqueue before the loop starts, then cancel immediately: the worker
	// must still flush what it already accepted.
	w.Send(domain.PushTask{Username: "a"})
	w.Send(domain.PushTask{Username: "b"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	finished := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not stop")
	}

	require.Len(t, delivered, 2)
	assert.Equal(t, "a", <-delivered)
	assert.Equal(t, "b", <-delivered)
}

func TestPushWorker_DrainDeadlineRecordsDrops(t *testing.T) {
	publisher := new(mocks.RealtimePublisher)
	publisher.On("PublishToUser", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { time.Sleep(2500 * time.Millisecond) }).
		Return(nil)

	w := workers.NewPushWorker(publisher)
	w.Send(domain.PushTask{Username: "a"})
	w.Send(domain.PushTask{Username: "b"})
	w.Send(domain.PushTask{Username: "c"})

	before := testutil.ToFloat64(metrics.PushesDroppedTotal)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	finished := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(10 * time.Second):
		t.Fatal("worker did not stop")
	}

	// Each delivery overruns the drain deadline, so at least one queued
	// task cannot be flushed and must be counted as dropped, not lost
	// silently.
	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.PushesDroppedTotal)-before, float64(1))
}
