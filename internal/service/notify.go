package service

import (
	"context"
	"time"

	"github.com/giftforge/giftforge/internal/domain"
)

// notifyBestEffort delivers one notification through the sink, reporting any
// failure to the observer and swallowing it. Delivery problems must never
// surface as workflow errors.
func notifyBestEffort(ctx context.Context, sink NotificationSink, observer UseCaseObserver,
	recipientID string, role domain.UserRole, eventType, message string) {
	if sink == nil {
		return
	}
	start := time.Now()
	_, err := sink.Send(ctx, recipientID, role, eventType, message, nil)
	if err != nil {
		observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "notification_delivery",
			Duration:  time.Since(start),
			Success:   false,
			Err:       err,
			Fields:    map[string]any{"event_type": eventType, "recipient_id": recipientID},
			StartedAt: start,
		})
	}
}
