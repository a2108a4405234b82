package notify

import (
	"context"

	"go.uber.org/zap"
)

type EventType string

const (
	EventOrderCreated     EventType = "order_created"
	EventResponseApproved EventType = "response_approved"
	EventResponseDeclined EventType = "response_declined"
	EventOrderClosed      EventType = "order_closed"
	EventBoosterPaid      EventType = "booster_paid"
)

// Event is one outbound notification. Delivery is fire-and-forget: the
// request path only enqueues, the dispatcher owns retries-free delivery.
type Event struct {
	Type     EventType
	OrderID  string
	Username string
	Text     string
}

type Sender interface {
	Send(ctx context.Context, event Event) error
}

type Queue struct {
	events  chan Event
	senders []Sender
}

func NewQueue(size int, senders ...Sender) *Queue {
	return &Queue{
		events:  make(chan Event, size),
		senders: senders,
	}
}

// Emit never blocks the caller; a full queue drops the event with a log
// line, matching the swallow-and-log contract for notifications.
func (q *Queue) Emit(event Event) {
	select {
	case q.events <- event:
	default:
		zap.L().Warn("notification queue full, dropping event", zap.String("type", string(event.Type)), zap.String("orderID", event.OrderID))
	}
}

func (q *Queue) Start(ctx context.Context) {
	zap.L().Info("notification dispatcher started")
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping notification dispatcher")
			return
		case event := <-q.events:
			q.dispatch(ctx, event)
		}
	}
}

func (q *Queue) dispatch(ctx context.Context, event Event) {
	for _, sender := range q.senders {
		if err := sender.Send(ctx, event); err != nil {
			zap.L().Error("notification delivery failed",
				zap.String("type", string(event.Type)),
				zap.String("orderID", event.OrderID),
				zap.Error(err),
			)
		}
	}
}
