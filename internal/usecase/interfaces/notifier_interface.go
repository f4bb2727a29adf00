package interfaces

import "context"

// INotifier abstracts the downstream notification sink (Kafka in the shipped
// implementation). Publication is best-effort: callers log failures and move
// on, they never roll back domain state over a lost event.
type INotifier interface {
	Publish(ctx context.Context, eventType string, payload any) error
}
