package pipeline

import (
	"context"

	"go.trai.ch/fold/internal/core/ports"
)

// ErrorTitle is the title of every failure notification.
const ErrorTitle = "Task Error"

// ErrorNotifier surfaces a failed run on the console and, when enabled, on the desktop.
type ErrorNotifier struct {
	logger  ports.Logger
	desktop ports.Notifier
}

// NewErrorNotifier creates an ErrorNotifier. desktop may be nil.
func NewErrorNotifier(logger ports.Logger, desktop ports.Notifier) *ErrorNotifier {
	return &ErrorNotifier{logger: logger, desktop: desktop}
}

// Handle reports err. It never fails: a desktop delivery problem becomes a warning.
func (n *ErrorNotifier) Handle(ctx context.Context, err error) {
	n.logger.Error(err)

	if n.desktop == nil {
		return
	}
	if nerr := n.desktop.Notify(ctx, ErrorTitle, err.Error()); nerr != nil {
		n.logger.Warn("could not show desktop notification: " + nerr.Error())
	}
}
