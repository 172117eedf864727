package notification

import (
	"context"

	"go.uber.org/zap"
)

// ZapNotifier emits operational alerts to the structured log. It backs
// the low stock alerting until a real channel (email, chat webhook) is
// wired in.
type ZapNotifier struct {
	log *zap.Logger
}

// NewZapNotifier creates a log-backed notifier
func NewZapNotifier(log *zap.Logger) *ZapNotifier {
	return &ZapNotifier{log: log}
}

// Notify records an alert with structured fields
func (n *ZapNotifier) Notify(_ context.Context, subject, message string, fields map[string]interface{}) error {
	zapFields := make([]zap.Field, 0, len(fields)+2)
	zapFields = append(zapFields, zap.String("subject", subject), zap.String("message", message))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	n.log.Warn("alert", zapFields...)
	return nil
}
