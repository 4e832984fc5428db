package event

import (
	"context"

	"github.com/thesisdesk/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LoggingEventHandler logs every published domain event.
// Registered as a wildcard handler so the audit trail covers all contexts.
type LoggingEventHandler struct {
	logger *zap.Logger
}

// NewLoggingEventHandler creates a logging event handler
func NewLoggingEventHandler(logger *zap.Logger) *LoggingEventHandler {
	return &LoggingEventHandler{logger: logger.Named("events")}
}

// Handle logs the event
func (h *LoggingEventHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.logger.Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes returns an empty slice so the handler receives all events
func (h *LoggingEventHandler) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*LoggingEventHandler)(nil)
