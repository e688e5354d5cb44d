package request

import (
	"encoding/json"
	"strings"
)

// SubmitAdoptionRequest is the payload sent by the mobile client when an
// adopter applies for a pet. Household carries the free-form home survey
// (home type, occupants, yard, other animals) and is stored as-is.
type SubmitAdoptionRequest struct {
	PetID       string          `json:"pet_id" binding:"required"`
	ApplicantID string          `json:"applicant_id" binding:"required"`
	Household   json.RawMessage `json:"household"`
}

func (r SubmitAdoptionRequest) ResolvePetID() string {
	return strings.TrimSpace(r.PetID)
}

func (r SubmitAdoptionRequest) ResolveApplicantID() string {
	return strings.TrimSpace(r.ApplicantID)
}

// AcceptAdoptionRequest schedules the home visit while accepting.
type AcceptAdoptionRequest struct {
	VisitDate string `json:"visit_date" binding:"required"`
	VisitTime string `json:"visit_time" binding:"required"`
}

// TerminateAdoptionRequest carries a taxonomy reason for reject and fail.
// Detail is mandatory only when reason is "other".
type TerminateAdoptionRequest struct {
	Reason string `json:"reason" binding:"required"`
	Detail string `json:"detail"`
}

// ChecklistRequest names the requirement being marked as fulfilled.
// CheckedAt is optional (RFC3339); the server clock is used when absent.
type ChecklistRequest struct {
	Item      string `json:"item" binding:"required"`
	CheckedAt string `json:"checked_at"`
}
