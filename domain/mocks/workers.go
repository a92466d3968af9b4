package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type PushWorker struct {
	mock.Mock
}

func (m *PushWorker) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *PushWorker) Send(task domain.PushTask) {
	m.Called(task)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *EventPublisher) Send(ev domain.EngagementEvent) {
	m.Called(ev)
}
