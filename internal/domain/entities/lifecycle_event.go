package entities

import "time"

// LifecycleEventType labels the notifications pushed to the dispatcher.
type LifecycleEventType string

const (
	EventApplicationSubmitted LifecycleEventType = "application_submitted"
	EventApplicationAccepted  LifecycleEventType = "application_accepted"
	EventApplicationRejected  LifecycleEventType = "application_rejected"
	EventChecklistUpdated     LifecycleEventType = "checklist_updated"
	EventApplicationCompleted LifecycleEventType = "application_completed"
	EventApplicationFailed    LifecycleEventType = "application_failed"
)

// LifecycleEvent is handed to the notification dispatcher after a transition
// has been durably saved. Delivery is best-effort; the dispatcher owns
// fan-out to the adopter and shelter staff (in-app, chat, push).
type LifecycleEvent struct {
	Type          LifecycleEventType `json:"type"`
	ApplicationID string             `json:"application_id"`
	PetID         string             `json:"pet_id"`
	ApplicantID   string             `json:"applicant_id"`
	OccurredAt    time.Time          `json:"occurred_at"`

	Visit         *Visit             `json:"visit,omitempty"`
	ChecklistItem ChecklistItemKey   `json:"checklist_item,omitempty"`
	Reason        *TerminationReason `json:"reason,omitempty"`
}
