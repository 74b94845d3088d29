// Package webhook delivers messages to incoming webhooks that accept the
// Slack message format. Discord exposes one at "<webhook url>/slack".
package webhook

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

type notifier struct {
	username   string
	httpClient *http.Client
}

// New returns a Notifier posting as username. A nil httpClient uses
// http.DefaultClient.
func New(username string, httpClient *http.Client) contract.Notifier {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &notifier{username: username, httpClient: httpClient}
}

func (n *notifier) Send(ctx context.Context, target, text string) error {
	msg := &slack.WebhookMessage{
		Username: n.username,
		Text:     text,
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, target, n.httpClient, msg); err != nil {
		return errors.Wrap(err, "webhook request failed")
	}

	return nil
}
