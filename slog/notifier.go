package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/urlsum"
)

// Ensure LoggingNotifier implements urlsum.Notifier.
var _ urlsum.Notifier = (*LoggingNotifier)(nil)

// LoggingNotifier wraps a Notifier with logging.
type LoggingNotifier struct {
	next   urlsum.Notifier
	logger *slog.Logger
}

// NewLoggingNotifier creates a new LoggingNotifier.
func NewLoggingNotifier(next urlsum.Notifier, logger *slog.Logger) *LoggingNotifier {
	return &LoggingNotifier{next: next, logger: logger}
}

// NotifyRating logs the delivery attempt and delegates to the wrapped notifier.
func (n *LoggingNotifier) NotifyRating(ctx context.Context, stars int) (err error) {
	defer func(begin time.Time) {
		n.logger.Info("notify rating",
			"stars", stars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.NotifyRating(ctx, stars)
}
