// Package notify implements desktop notifications for build failures.
package notify

import (
	"context"

	"github.com/gen2brain/beeep"
	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Notifier = (*Desktop)(nil)
	_ ports.Notifier = Noop{}
)

// AppName is shown as the sender of desktop notifications.
const AppName = "fold"

// SendFunc delivers one notification.
type SendFunc func(title, message string, icon any) error

// Desktop delivers notifications through the operating system's notification center.
type Desktop struct {
	send SendFunc
}

// NewDesktop creates a Desktop notifier backed by beeep.
func NewDesktop() *Desktop {
	beeep.AppName = AppName
	return &Desktop{send: func(title, message string, _ any) error {
		return beeep.Notify(title, message, "")
	}}
}

// NewDesktopWithSender creates a Desktop notifier that delivers through send.
func NewDesktopWithSender(send SendFunc) *Desktop {
	return &Desktop{send: send}
}

// Notify implements ports.Notifier.
func (d *Desktop) Notify(ctx context.Context, title, message string) error {
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, domain.ErrNotifyFailed.Error())
	}
	if err := d.send(title, message, ""); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrNotifyFailed.Error()), "title", title)
	}
	return nil
}

// Noop discards notifications.
type Noop struct{}

// Notify implements ports.Notifier.
func (Noop) Notify(context.Context, string, string) error {
	return nil
}
