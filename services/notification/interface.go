package notification

import "context"

// Service delivers best-effort push notifications. Failures are logged by
// implementations and never bubble into the caller's flow.
type Service interface {
	Notify(ctx context.Context, userID, title, body string) error
}
