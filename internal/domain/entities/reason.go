package entities

import "errors"

// Rejection and failure reasons are closed taxonomies, not free text.
// "other" is the only escape hatch and requires a non-empty detail.

var (
	ErrInvalidReasonKind    = errors.New("invalid reason kind")
	ErrReasonDetailRequired = errors.New("reason detail required")
)

// RejectionReason categorizes a refusal of a submitted application.
type RejectionReason string

const (
	RejectionReasonIncompleteApplication RejectionReason = "incomplete_application"
	RejectionReasonUnsuitableHousehold   RejectionReason = "unsuitable_household"
	RejectionReasonOther                 RejectionReason = "other"
)

// FailureReason categorizes a failure discovered after acceptance.
type FailureReason string

const (
	FailureReasonIncompatibleWithPet     FailureReason = "incompatible_with_pet"
	FailureReasonFailedHomeVisit         FailureReason = "failed_home_visit"
	FailureReasonNoLongerInterested      FailureReason = "no_longer_interested"
	FailureReasonIncompleteDocumentation FailureReason = "incomplete_documentation"
	FailureReasonOther                   FailureReason = "other"
)

// TerminationReason records why an application reached rejected or failed.
// Kind holds either a RejectionReason or a FailureReason value, depending on
// the transition that set it.
type TerminationReason struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

// NewRejectionReason validates kind against the rejection taxonomy.
// Detail is mandatory for "other" and kept as-is for every other kind.
func NewRejectionReason(kind, detail string) (TerminationReason, error) {
	switch RejectionReason(kind) {
	case RejectionReasonIncompleteApplication, RejectionReasonUnsuitableHousehold:
		return TerminationReason{Kind: kind, Detail: detail}, nil
	case RejectionReasonOther:
		if detail == "" {
			return TerminationReason{}, ErrReasonDetailRequired
		}
		return TerminationReason{Kind: kind, Detail: detail}, nil
	}
	return TerminationReason{}, ErrInvalidReasonKind
}

// NewFailureReason validates kind against the failure taxonomy.
func NewFailureReason(kind, detail string) (TerminationReason, error) {
	switch FailureReason(kind) {
	case FailureReasonIncompatibleWithPet, FailureReasonFailedHomeVisit,
		FailureReasonNoLongerInterested, FailureReasonIncompleteDocumentation:
		return TerminationReason{Kind: kind, Detail: detail}, nil
	case FailureReasonOther:
		if detail == "" {
			return TerminationReason{}, ErrReasonDetailRequired
		}
		return TerminationReason{Kind: kind, Detail: detail}, nil
	}
	return TerminationReason{}, ErrInvalidReasonKind
}
