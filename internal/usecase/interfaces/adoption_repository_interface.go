package interfaces

import (
	"context"
	"abrigo_xpto/internal/domain/entities"
)

// IAdoptionRepository abstracts DynamoDB persistence for AdoptionApplication.
//
// Conventions (shared with the rest of the service):
//   - a zero-value entity (ID == "") means "not found"
//   - Save is a compare-and-swap on the version the caller read; a CAS miss
//     also returns a zero-value entity, never a partial write

type IAdoptionRepository interface {
	Create(ctx context.Context, app entities.AdoptionApplication) (entities.AdoptionApplication, error)
	GetByID(ctx context.Context, id string) (entities.AdoptionApplication, error)
	Save(ctx context.Context, app entities.AdoptionApplication, expectedVersion int64) (entities.AdoptionApplication, error)
	ListByPetID(ctx context.Context, petID string) ([]entities.AdoptionApplication, error)
	ListByApplicantID(ctx context.Context, applicantID string) ([]entities.AdoptionApplication, error)
}
