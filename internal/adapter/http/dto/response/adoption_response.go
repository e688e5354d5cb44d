package response

import (
	"time"

	"abrigo_xpto/internal/domain/entities"
)

type VisitResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type ChecklistItemResponse struct {
	IsChecked bool       `json:"is_checked"`
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}

type ChecklistResponse struct {
	CompliedPapers      ChecklistItemResponse `json:"complied_papers"`
	HomeVisitSuccessful ChecklistItemResponse `json:"home_visit_successful"`
}

type TerminationReasonResponse struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

type AdoptionApplicationResponse struct {
	ID                string                     `json:"id"`
	PetID             string                     `json:"pet_id"`
	ApplicantID       string                     `json:"applicant_id"`
	Status            string                     `json:"status"`
	SubmittedAt       time.Time                  `json:"submitted_at"`
	Household         map[string]interface{}     `json:"household,omitempty"`
	Visit             *VisitResponse             `json:"visit,omitempty"`
	Checklist         ChecklistResponse          `json:"checklist"`
	TerminationReason *TerminationReasonResponse `json:"termination_reason,omitempty"`
	UpdatedAt         time.Time                  `json:"updated_at"`
}

func FromAdoptionApplication(app entities.AdoptionApplication) AdoptionApplicationResponse {
	res := AdoptionApplicationResponse{
		ID:          app.ID,
		PetID:       app.PetID,
		ApplicantID: app.ApplicantID,
		Status:      string(app.Status),
		SubmittedAt: app.SubmittedAt,
		Household:   app.Household,
		Checklist: ChecklistResponse{
			CompliedPapers:      ChecklistItemResponse(app.Checklist.CompliedPapers),
			HomeVisitSuccessful: ChecklistItemResponse(app.Checklist.HomeVisitSuccessful),
		},
		UpdatedAt: app.UpdatedAt,
	}
	if app.Visit != nil {
		res.Visit = &VisitResponse{Date: app.Visit.Date, Time: app.Visit.Time}
	}
	if app.TerminationReason != nil {
		res.TerminationReason = &TerminationReasonResponse{
			Kind:   app.TerminationReason.Kind,
			Detail: app.TerminationReason.Detail,
		}
	}
	return res
}

func FromAdoptionApplications(apps []entities.AdoptionApplication) []AdoptionApplicationResponse {
	out := make([]AdoptionApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, FromAdoptionApplication(app))
	}
	return out
}
