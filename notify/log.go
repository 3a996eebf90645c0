package notify

import (
	"github.com/etnz/kirana"
	"go.uber.org/zap"
)

// Log writes alerts to a zap logger at warn level.
type Log struct {
	logger *zap.Logger
}

// NewLog returns a notifier writing to logger.
func NewLog(logger *zap.Logger) *Log { return &Log{logger: logger} }

// Notify logs a. It never fails.
func (l *Log) Notify(a kirana.AlertEvent) error {
	l.logger.Warn(a.Title(),
		zap.String("item", a.Item),
		zap.Int("quantity", a.Quantity),
		zap.Int("threshold", a.Threshold))
	return nil
}
