package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/clients"
)

// DiscordSender posts events to a channel webhook. A webhook is a single
// JSON POST, so the shared HTTP client is enough.
type DiscordSender struct {
	webhookURL string
	client     clients.HTTPClientI
}

func NewDiscordSender(webhookURL string, client clients.HTTPClientI) *DiscordSender {
	return &DiscordSender{
		webhookURL: webhookURL,
		client:     client,
	}
}

type discordMessage struct {
	Content string `json:"content"`
}

func (d *DiscordSender) Send(_ context.Context, event Event) error {
	body, err := json.Marshal(discordMessage{Content: Render(event)})
	if err != nil {
		return err
	}

	statusCode, _, err := d.client.PostJSON(d.webhookURL, nil, body)
	if err != nil {
		return err
	}
	if statusCode >= http.StatusBadRequest {
		return fmt.Errorf("discord webhook returned status %d", statusCode)
	}
	return nil
}
