package contract

import "context"

// JokeProvider supplies one sentence of text on demand
type JokeProvider interface {
	Fetch(ctx context.Context) (string, error)
}

// Notifier delivers a finished message to a target, usually a webhook URL
type Notifier interface {
	Send(ctx context.Context, target, text string) error
}
