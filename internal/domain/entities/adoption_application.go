package entities

import (
	"encoding/json"
	"time"
)

// ApplicationStatus represents the lifecycle of an adoption application.
//
// Domain notes:
//   - The adoption-service is the source of truth for application state.
//   - Transitions are driven by the staff/adopter actions in §4 of the
//     shelter workflow document (accept, reject, checklist, complete, fail).

type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusCompleted ApplicationStatus = "completed"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusFailed    ApplicationStatus = "failed"
)

// allowedTransitions defines the permitted lifecycle state changes.
// completed, rejected and failed are terminal: no outgoing edges.
var allowedTransitions = map[ApplicationStatus]map[ApplicationStatus]struct{}{
	ApplicationStatusSubmitted: {
		ApplicationStatusAccepted: {},
		ApplicationStatusRejected: {},
	},
	ApplicationStatusAccepted: {
		ApplicationStatusCompleted: {},
		ApplicationStatusFailed:    {},
	},
	ApplicationStatusCompleted: {},
	ApplicationStatusRejected:  {},
	ApplicationStatusFailed:    {},
}

// CanTransitionTo reports whether the lifecycle allows the requested change.
func (s ApplicationStatus) CanTransitionTo(to ApplicationStatus) bool {
	allowed, ok := allowedTransitions[s]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// IsTerminal reports whether no further transition is permitted.
func (s ApplicationStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0 && s != ""
}

// Visit is the scheduled home visit (visita domiciliar), normalized by the
// schedule validator. Date uses 2006-01-02, Time uses 15:04.
type Visit struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ChecklistItem is a one-way flag: once checked it cannot be unchecked.
type ChecklistItem struct {
	IsChecked bool       `json:"is_checked"`
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}

// Check flips the item to checked exactly once.
func (c *ChecklistItem) Check(at time.Time) bool {
	if c.IsChecked {
		return false
	}
	c.IsChecked = true
	t := at.UTC()
	c.CheckedAt = &t
	return true
}

// ChecklistItemKey names one of the two pre-completion requirements.
type ChecklistItemKey string

const (
	ChecklistItemCompliedPapers      ChecklistItemKey = "complied_papers"
	ChecklistItemHomeVisitSuccessful ChecklistItemKey = "home_visit_successful"
)

// ParseChecklistItemKey validates a caller-supplied item name.
func ParseChecklistItemKey(s string) (ChecklistItemKey, bool) {
	switch ChecklistItemKey(s) {
	case ChecklistItemCompliedPapers, ChecklistItemHomeVisitSuccessful:
		return ChecklistItemKey(s), true
	}
	return "", false
}

// Checklist tracks the two mandatory requirements gating completion.
type Checklist struct {
	CompliedPapers      ChecklistItem `json:"complied_papers"`
	HomeVisitSuccessful ChecklistItem `json:"home_visit_successful"`
}

// Item returns a pointer to the named item, or nil for an unknown key.
func (c *Checklist) Item(key ChecklistItemKey) *ChecklistItem {
	switch key {
	case ChecklistItemCompliedPapers:
		return &c.CompliedPapers
	case ChecklistItemHomeVisitSuccessful:
		return &c.HomeVisitSuccessful
	}
	return nil
}

// IsComplete reports whether both items are checked.
func (c Checklist) IsComplete() bool {
	return c.CompliedPapers.IsChecked && c.HomeVisitSuccessful.IsChecked
}

// AdoptionApplication is the adoption request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (pet_id-index): pet_id
//   - GSI2 (applicant_id-index): applicant_id
//
// Household payload:
//   - HouseholdRaw keeps the original submission body (JSON) for audit.
//   - Household is an optional parsed representation, useful for querying.
//     Both are immutable after submission.
//
// Version implements optimistic concurrency: every save is conditional on
// the version read, so two racing transitions cannot both win.

type AdoptionApplication struct {
	ID          string            `json:"id"`
	PetID       string            `json:"pet_id"`
	ApplicantID string            `json:"applicant_id"`
	SubmittedAt time.Time         `json:"submitted_at"`
	Status      ApplicationStatus `json:"status"`

	HouseholdRaw json.RawMessage        `json:"household_raw,omitempty"`
	Household    map[string]interface{} `json:"household,omitempty"`

	Visit             *Visit             `json:"visit,omitempty"`
	Checklist         Checklist          `json:"checklist"`
	TerminationReason *TerminationReason `json:"termination_reason,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"version"`
}
