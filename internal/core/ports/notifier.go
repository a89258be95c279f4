package ports

import (
	"context"

	"missionops/internal/core/domain/model/kernel"
)

// Notifier is the fire-and-forget notification sink. Delivery failures are
// logged by the adapter and never block or fail the triggering workflow step.
type Notifier interface {
	// Notify sends a message to the given user with an optional link to the
	// relevant mission order.
	Notify(ctx context.Context, userID kernel.UUID, title, message, link string)
}
