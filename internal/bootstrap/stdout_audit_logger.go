package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes process-level events to the zap global. The
// portal's persistent audit trail lives in internal/audit; this one only
// covers lifecycle events that happen before or after the DB is usable.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("process.audit").Info(entry.Action,
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
