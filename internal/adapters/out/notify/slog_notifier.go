// Package notify implements the Notifier port as a structured-log sink.
// A real deployment would swap in mail or chat delivery behind the same
// port; the workflow never depends on delivery succeeding.
package notify

import (
	"context"
	"log/slog"

	"missionops/internal/core/domain/model/kernel"
)

// SlogNotifier writes notifications to the application log.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing through the given logger. A nil
// logger falls back to slog.Default.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogNotifier{logger: logger}
}

// Notify records the notification. Never fails, never blocks the caller.
func (n *SlogNotifier) Notify(ctx context.Context, userID kernel.UUID, title, message, link string) {
	n.logger.InfoContext(ctx, "notification",
		slog.String("user_id", userID.String()),
		slog.String("title", title),
		slog.String("message", message),
		slog.String("link", link),
	)
}
