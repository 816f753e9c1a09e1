package store

import "go.uber.org/zap"

// Notifier is the user-facing notification channel. Every store operation's
// outcome emits exactly one short title + description pair.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}

// ZapNotifier logs notifications instead of rendering them, for headless
// consumers.
type ZapNotifier struct {
	logger *zap.Logger
}

func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	return &ZapNotifier{logger: logger}
}

func (n *ZapNotifier) Success(title, description string) {
	n.logger.Info(title, zap.String("description", description))
}

func (n *ZapNotifier) Error(title, description string) {
	n.logger.Warn(title, zap.String("description", description))
}
