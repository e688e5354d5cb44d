package interfaces

import (
	"context"
	"abrigo_xpto/internal/domain/entities"
)

// INotificationDispatcher abstracts the channel that informs the adopter and
// shelter staff about lifecycle transitions (e.g. the shelter chat backend).
//
// The engine calls Publish after the state change is durably saved. A failed
// publish is logged by the caller and never rolls the transition back.
type INotificationDispatcher interface {
	Publish(ctx context.Context, event entities.LifecycleEvent) error
}
