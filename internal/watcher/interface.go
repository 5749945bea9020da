package watcher

import "context"

// Watcher monitors a drop-in directory for new deck files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly dropped deck file.
type EventHandler func(ctx context.Context, deckPath string) error
