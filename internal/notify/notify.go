// Package notify turns domain events into user notifications.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/kafka"
)

type Message struct {
	UserID  int64
	Subject string
	Body    string
}

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes messages to the log instead of a mail gateway.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "notification sent", "user_id", msg.UserID, "subject", msg.Subject, "body", msg.Body)
	return nil
}

type Notifier struct {
	sender Sender
	logger *slog.Logger
}

func NewNotifier(sender Sender, logger *slog.Logger) *Notifier {
	return &Notifier{sender: sender, logger: logger}
}

// Handle notifies the owner about new orders and tickets. Other events are ignored.
// Events whose payload cannot be decoded are logged and dropped so the
// consumer keeps moving.
func (n *Notifier) Handle(ctx context.Context, ev kafka.Event) error {
	msg, ok, err := render(ev)
	if err != nil {
		n.logger.WarnContext(ctx, "dropping event", "type", ev.Type, "entity_id", ev.EntityID, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return n.sender.Send(ctx, msg)
}

func render(ev kafka.Event) (Message, bool, error) {
	switch ev.Type {
	case kafka.OrderCreated:
		var order domain.Order
		if err := json.Unmarshal(ev.Data, &order); err != nil {
			return Message{}, false, fmt.Errorf("decode order: %w", err)
		}
		return Message{
			UserID:  ev.UserID,
			Subject: fmt.Sprintf("Order #%d created", order.ID),
			Body:    fmt.Sprintf("Your order #%d was created at %s.", order.ID, order.CreatedAt.Format("2006-01-02 15:04")),
		}, true, nil
	case kafka.TicketCreated:
		var ticket domain.Ticket
		if err := json.Unmarshal(ev.Data, &ticket); err != nil {
			return Message{}, false, fmt.Errorf("decode ticket: %w", err)
		}
		f := ticket.Flight
		return Message{
			UserID:  ev.UserID,
			Subject: fmt.Sprintf("Ticket for flight #%d", f.ID),
			Body: fmt.Sprintf("%s to %s, departs %s. Row %d, seat %d.",
				f.Route.Source.Name, f.Route.Destination.Name,
				f.DepartureTime.Format("2006-01-02 15:04"), ticket.Row, ticket.Seat),
		}, true, nil
	default:
		return Message{}, false, nil
	}
}
