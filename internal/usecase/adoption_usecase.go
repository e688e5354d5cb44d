package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"abrigo_xpto/internal/domain/entities"
	"abrigo_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound    = errors.New("adoption application not found")
	ErrInvalidApplicationID   = errors.New("invalid application id")
	ErrInvalidPetID           = errors.New("invalid pet_id")
	ErrInvalidApplicantID     = errors.New("invalid applicant_id")
	ErrInvalidHousehold       = errors.New("invalid household payload")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInvalidChecklistItem   = errors.New("invalid checklist item")
	ErrAlreadyChecked         = errors.New("checklist item already checked")
	ErrChecklistIncomplete    = errors.New("checklist incomplete")
	ErrApplicationConflict    = errors.New("concurrent application update")
)

// IAdoptionUseCase exposes the adoption-application lifecycle.
//
// The five transition operations map 1:1 to the workflow actions:
//   - staff accepts and schedules the home visit => Accept()
//   - staff refuses a fresh application => Reject()
//   - staff records a fulfilled requirement => MarkChecklistItem()
//   - staff finalizes the adoption => Complete()
//   - staff aborts after acceptance => Fail()

type IAdoptionUseCase interface {
	Submit(ctx context.Context, petID, applicantID string, household json.RawMessage) (entities.AdoptionApplication, error)
	Accept(ctx context.Context, id, visitDate, visitTime string) (entities.AdoptionApplication, error)
	Reject(ctx context.Context, id, reasonKind, reasonDetail string) (entities.AdoptionApplication, error)
	MarkChecklistItem(ctx context.Context, id, item string, at time.Time) (entities.AdoptionApplication, error)
	Complete(ctx context.Context, id string) (entities.AdoptionApplication, error)
	Fail(ctx context.Context, id, reasonKind, reasonDetail string) (entities.AdoptionApplication, error)
	GetByID(ctx context.Context, id string) (entities.AdoptionApplication, error)
	ListByPetID(ctx context.Context, petID string) ([]entities.AdoptionApplication, error)
	ListByApplicantID(ctx context.Context, applicantID string) ([]entities.AdoptionApplication, error)
}

type AdoptionUseCase struct {
	repo       interfaces.IAdoptionRepository
	dispatcher interfaces.INotificationDispatcher
	schedule   *VisitScheduleValidator
	locker     *applicationLocker
}

var _ IAdoptionUseCase = (*AdoptionUseCase)(nil)

func NewAdoptionUseCase(repo interfaces.IAdoptionRepository, dispatcher interfaces.INotificationDispatcher) *AdoptionUseCase {
	return &AdoptionUseCase{
		repo:       repo,
		dispatcher: dispatcher,
		schedule:   NewVisitScheduleValidator(),
		locker:     newApplicationLocker(),
	}
}

func (u *AdoptionUseCase) Submit(ctx context.Context, petID, applicantID string, household json.RawMessage) (entities.AdoptionApplication, error) {
	petID = strings.TrimSpace(petID)
	applicantID = strings.TrimSpace(applicantID)
	if petID == "" {
		return entities.AdoptionApplication{}, ErrInvalidPetID
	}
	if applicantID == "" {
		return entities.AdoptionApplication{}, ErrInvalidApplicantID
	}

	var parsed map[string]interface{}
	if len(household) > 0 {
		if !json.Valid(household) {
			return entities.AdoptionApplication{}, ErrInvalidHousehold
		}
		// Parsed form is best-effort; the raw body is what we audit.
		_ = json.Unmarshal(household, &parsed)
	}

	now := time.Now().UTC()
	app := entities.AdoptionApplication{
		ID:           uuid.NewString(),
		PetID:        petID,
		ApplicantID:  applicantID,
		SubmittedAt:  now,
		Status:       entities.ApplicationStatusSubmitted,
		HouseholdRaw: household,
		Household:    parsed,
		UpdatedAt:    now,
		Version:      1,
	}

	created, err := u.repo.Create(ctx, app)
	if err != nil {
		return entities.AdoptionApplication{}, err
	}
	log.Printf("[adoption][usecase] submitted application_id=%s pet_id=%s applicant_id=%s", created.ID, created.PetID, created.ApplicantID)

	u.publish(ctx, entities.LifecycleEvent{
		Type:          entities.EventApplicationSubmitted,
		ApplicationID: created.ID,
		PetID:         created.PetID,
		ApplicantID:   created.ApplicantID,
		OccurredAt:    now,
	})
	return created, nil
}

func (u *AdoptionUseCase) Accept(ctx context.Context, id, visitDate, visitTime string) (entities.AdoptionApplication, error) {
	return u.transition(ctx, id, func(app *entities.AdoptionApplication) (entities.LifecycleEvent, error) {
		if !app.Status.CanTransitionTo(entities.ApplicationStatusAccepted) {
			return entities.LifecycleEvent{}, ErrInvalidStateTransition
		}
		visit, err := u.schedule.Validate(visitDate, visitTime)
		if err != nil {
			return entities.LifecycleEvent{}, err
		}
		app.Status = entities.ApplicationStatusAccepted
		app.Visit = &visit
		app.Checklist = entities.Checklist{}
		return entities.LifecycleEvent{Type: entities.EventApplicationAccepted, Visit: app.Visit}, nil
	})
}

func (u *AdoptionUseCase) Reject(ctx context.Context, id, reasonKind, reasonDetail string) (entities.AdoptionApplication, error) {
	return u.transition(ctx, id, func(app *entities.AdoptionApplication) (entities.LifecycleEvent, error) {
		if !app.Status.CanTransitionTo(entities.ApplicationStatusRejected) {
			return entities.LifecycleEvent{}, ErrInvalidStateTransition
		}
		reason, err := entities.NewRejectionReason(strings.TrimSpace(reasonKind), strings.TrimSpace(reasonDetail))
		if err != nil {
			return entities.LifecycleEvent{}, err
		}
		app.Status = entities.ApplicationStatusRejected
		app.TerminationReason = &reason
		return entities.LifecycleEvent{Type: entities.EventApplicationRejected, Reason: app.TerminationReason}, nil
	})
}

func (u *AdoptionUseCase) MarkChecklistItem(ctx context.Context, id, item string, at time.Time) (entities.AdoptionApplication, error) {
	return u.transition(ctx, id, func(app *entities.AdoptionApplication) (entities.LifecycleEvent, error) {
		if app.Status != entities.ApplicationStatusAccepted {
			return entities.LifecycleEvent{}, ErrInvalidStateTransition
		}
		key, ok := entities.ParseChecklistItemKey(strings.TrimSpace(item))
		if !ok {
			return entities.LifecycleEvent{}, ErrInvalidChecklistItem
		}
		if at.IsZero() {
			at = time.Now().UTC()
		}
		// Re-checking is rejected, not silently accepted, so the audit
		// trail holds exactly one checking event per item.
		if !app.Checklist.Item(key).Check(at) {
			return entities.LifecycleEvent{}, ErrAlreadyChecked
		}
		return entities.LifecycleEvent{Type: entities.EventChecklistUpdated, ChecklistItem: key}, nil
	})
}

func (u *AdoptionUseCase) Complete(ctx context.Context, id string) (entities.AdoptionApplication, error) {
	return u.transition(ctx, id, func(app *entities.AdoptionApplication) (entities.LifecycleEvent, error) {
		if !app.Status.CanTransitionTo(entities.ApplicationStatusCompleted) {
			return entities.LifecycleEvent{}, ErrInvalidStateTransition
		}
		if !app.Checklist.IsComplete() {
			return entities.LifecycleEvent{}, ErrChecklistIncomplete
		}
		app.Status = entities.ApplicationStatusCompleted
		return entities.LifecycleEvent{Type: entities.EventApplicationCompleted}, nil
	})
}

func (u *AdoptionUseCase) Fail(ctx context.Context, id, reasonKind, reasonDetail string) (entities.AdoptionApplication, error) {
	return u.transition(ctx, id, func(app *entities.AdoptionApplication) (entities.LifecycleEvent, error) {
		if !app.Status.CanTransitionTo(entities.ApplicationStatusFailed) {
			return entities.LifecycleEvent{}, ErrInvalidStateTransition
		}
		reason, err := entities.NewFailureReason(strings.TrimSpace(reasonKind), strings.TrimSpace(reasonDetail))
		if err != nil {
			return entities.LifecycleEvent{}, err
		}
		// Visit and partially-completed checklist are kept for audit.
		app.Status = entities.ApplicationStatusFailed
		app.TerminationReason = &reason
		return entities.LifecycleEvent{Type: entities.EventApplicationFailed, Reason: app.TerminationReason}, nil
	})
}

// transition runs one serialized validate+mutate+emit cycle for id.
//
// The apply callback validates against the loaded state and mutates the
// record in memory; nothing is persisted until Save, which is conditional on
// the version that was read. Any validation error leaves the stored record
// untouched. The lifecycle event is published only after a durable save.
func (u *AdoptionUseCase) transition(
	ctx context.Context,
	id string,
	apply func(app *entities.AdoptionApplication) (entities.LifecycleEvent, error),
) (entities.AdoptionApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AdoptionApplication{}, ErrInvalidApplicationID
	}

	unlock := u.locker.Lock(id)
	defer unlock()

	app, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AdoptionApplication{}, err
	}
	if app.ID == "" {
		return entities.AdoptionApplication{}, ErrApplicationNotFound
	}

	expected := app.Version
	event, err := apply(&app)
	if err != nil {
		return entities.AdoptionApplication{}, err
	}

	now := time.Now().UTC()
	app.UpdatedAt = now
	app.Version = expected + 1

	saved, err := u.repo.Save(ctx, app, expected)
	if err != nil {
		return entities.AdoptionApplication{}, err
	}
	if saved.ID == "" {
		return entities.AdoptionApplication{}, ErrApplicationConflict
	}
	log.Printf("[adoption][usecase] transition saved application_id=%s status=%s event=%s", saved.ID, saved.Status, event.Type)

	event.ApplicationID = saved.ID
	event.PetID = saved.PetID
	event.ApplicantID = saved.ApplicantID
	event.OccurredAt = now
	u.publish(ctx, event)

	return saved, nil
}

// publish forwards the event to the dispatcher, best-effort. A delivery
// failure is logged and swallowed: an accepted application stays accepted
// even if the adopter was not immediately notified.
func (u *AdoptionUseCase) publish(ctx context.Context, event entities.LifecycleEvent) {
	if u.dispatcher == nil {
		return
	}
	if err := u.dispatcher.Publish(ctx, event); err != nil {
		log.Printf("[adoption][usecase] notification publish failed application_id=%s event=%s err=%v", event.ApplicationID, event.Type, err)
	}
}

func (u *AdoptionUseCase) GetByID(ctx context.Context, id string) (entities.AdoptionApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AdoptionApplication{}, ErrInvalidApplicationID
	}

	app, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AdoptionApplication{}, err
	}
	if app.ID == "" {
		return entities.AdoptionApplication{}, ErrApplicationNotFound
	}
	return app, nil
}

func (u *AdoptionUseCase) ListByPetID(ctx context.Context, petID string) ([]entities.AdoptionApplication, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidPetID
	}
	return u.repo.ListByPetID(ctx, petID)
}

func (u *AdoptionUseCase) ListByApplicantID(ctx context.Context, applicantID string) ([]entities.AdoptionApplication, error) {
	applicantID = strings.TrimSpace(applicantID)
	if applicantID == "" {
		return nil, ErrInvalidApplicantID
	}
	return u.repo.ListByApplicantID(ctx, applicantID)
}
