package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/pickup-inventory/model"
	"github.com/muhammadheryan/pickup-inventory/utils/logger"
	"go.uber.org/zap"
)

const publishTimeout = 3 * time.Second

// Publisher delivers audit events to whatever stores them.
type Publisher interface {
	PublishAuditEvent(ctx context.Context, event model.AuditEvent) error
}

// Emitter records one event per state change. Emit returns at once and never fails
// the caller: delivery happens in the background and problems are logged and dropped.
type Emitter interface {
	Emit(ctx context.Context, event model.AuditEvent)
	// Wait blocks until every event emitted so far has been handed to the publisher or dropped.
	Wait()
}

type emitter struct {
	publisher Publisher
	now       func() time.Time
	inflight  sync.WaitGroup
}

func NewEmitter(publisher Publisher) Emitter {
	return &emitter{publisher: publisher, now: time.Now}
}

func (e *emitter) Emit(ctx context.Context, event model.AuditEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.At.IsZero() {
		event.At = e.now().UTC()
	}

	if e.publisher == nil {
		logger.Debug("[Audit] no publisher configured", zap.String("action", string(event.Action)), zap.Uint64("entity_id", event.EntityID))
		return
	}

	// the request may already be finishing; the event still has to go out
	pubCtx := context.WithoutCancel(ctx)
	e.inflight.Add(1)
	go func() {
		defer e.inflight.Done()
		e.publish(pubCtx, event)
	}()
}

func (e *emitter) Wait() {
	e.inflight.Wait()
}

func (e *emitter) publish(ctx context.Context, event model.AuditEvent) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := e.publisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Warn("[Audit] publish event",
			zap.String("event_id", event.ID),
			zap.String("action", string(event.Action)),
			zap.String("entity", event.Entity),
			zap.Uint64("entity_id", event.EntityID),
			zap.String("error", err.Error()))
	}
}
