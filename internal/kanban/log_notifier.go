package kanban

import (
	"restoralia/pkg/logger"
)

// LogNotifier writes toasts to the structured log. The board daemon has no
// UI surface, operators read outcomes from the log stream.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{
		log: log.With(
			logger.NewField("component", "toast"),
		),
	}
}

func (n *LogNotifier) Success(message string) {
	n.log.Info(message)
}

func (n *LogNotifier) Error(message string) {
	n.log.Warn(message)
}
