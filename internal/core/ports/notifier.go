package ports

import "context"

// Notifier delivers a user-facing notification.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Notify shows title and message to the user.
	Notify(ctx context.Context, title, message string) error
}
