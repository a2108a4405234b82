package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
)

type TelegramSender struct {
	api    *bot.Bot
	chatID int64
}

func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	api, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot instance: %w", err)
	}
	return &TelegramSender{
		api:    api,
		chatID: chatID,
	}, nil
}

var templates = map[EventType]string{
	EventOrderCreated:     "New order %s posted\n%s",
	EventResponseApproved: "Response of %s approved for order %s",
	EventResponseDeclined: "Response of %s declined for order %s",
	EventOrderClosed:      "Order %s closed by %s",
	EventBoosterPaid:      "Booster %s paid for order %s",
}

func Render(event Event) string {
	switch event.Type {
	case EventOrderCreated:
		return fmt.Sprintf(templates[event.Type], event.OrderID, event.Text)
	case EventResponseApproved, EventResponseDeclined:
		return fmt.Sprintf(templates[event.Type], event.Username, event.OrderID)
	case EventOrderClosed:
		return fmt.Sprintf(templates[event.Type], event.OrderID, event.Username)
	case EventBoosterPaid:
		return fmt.Sprintf(templates[event.Type], event.Username, event.OrderID)
	default:
		return event.Text
	}
}

func (t *TelegramSender) Send(ctx context.Context, event Event) error {
	_, err := t.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   Render(event),
	})
	return err
}
