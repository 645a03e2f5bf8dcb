package mail

import (
	"context"
	"log/slog"
)

// DiscardSender logs outbound mail instead of delivering it. Used when
// no SMTP host is configured, which keeps local development working
// without a mail server.
type DiscardSender struct {
	Logger *slog.Logger
}

func (d *DiscardSender) Send(ctx context.Context, to, subject, bodyText, _ string) error {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.WarnContext(ctx, "mail delivery disabled, discarding message",
		"to", to,
		"subject", subject,
		"body", bodyText,
	)
	return nil
}
