package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fold/internal/adapters/notify"
	"go.trai.ch/fold/internal/core/domain"
)

func TestDesktop_Notify(t *testing.T) {
	var gotTitle, gotMessage string
	d := notify.NewDesktopWithSender(func(title, message string, _ any) error {
		gotTitle, gotMessage = title, message
		return nil
	})

	require.NoError(t, d.Notify(context.Background(), "Task Error", "components/todo.js:1:6: Expected identifier"))
	assert.Equal(t, "Task Error", gotTitle)
	assert.Equal(t, "components/todo.js:1:6: Expected identifier", gotMessage)
}

func TestDesktop_NotifyFailure(t *testing.T) {
	d := notify.NewDesktopWithSender(func(string, string, any) error {
		return errors.New("dbus unavailable")
	})

	err := d.Notify(context.Background(), "Task Error", "boom")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNotifyFailed.Error())
}

func TestDesktop_NotifyCanceled(t *testing.T) {
	called := false
	d := notify.NewDesktopWithSender(func(string, string, any) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, d.Notify(ctx, "Task Error", "boom"))
	assert.False(t, called)
}

func TestNoop_Notify(t *testing.T) {
	assert.NoError(t, notify.Noop{}.Notify(context.Background(), "Task Error", "boom"))
}
