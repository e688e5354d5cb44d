package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"abrigo_xpto/internal/domain/entities"
	mock_interfaces "abrigo_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *mock_interfaces.MockIAdoptionRepository, dispatcher *mock_interfaces.MockINotificationDispatcher) *AdoptionUseCase {
	var uc *AdoptionUseCase
	if dispatcher == nil {
		uc = NewAdoptionUseCase(repo, nil)
	} else {
		uc = NewAdoptionUseCase(repo, dispatcher)
	}
	uc.schedule = fixedValidator(testNow)
	return uc
}

func submittedApp(id string) entities.AdoptionApplication {
	return entities.AdoptionApplication{
		ID:          id,
		PetID:       "pet-1",
		ApplicantID: "applicant-1",
		SubmittedAt: testNow.Add(-24 * time.Hour),
		Status:      entities.ApplicationStatusSubmitted,
		UpdatedAt:   testNow.Add(-24 * time.Hour),
		Version:     1,
	}
}

func acceptedApp(id string) entities.AdoptionApplication {
	app := submittedApp(id)
	app.Status = entities.ApplicationStatusAccepted
	app.Visit = &entities.Visit{Date: "2026-08-30", Time: "10:30"}
	app.Version = 2
	return app
}

func TestAdoptionUseCase_Submit(t *testing.T) {
	t.Run("invalid pet id", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), "   ", "applicant-1", nil)
		if !errors.Is(err, ErrInvalidPetID) {
			t.Fatalf("expected ErrInvalidPetID, got %v", err)
		}
	})

	t.Run("invalid applicant id", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), "pet-1", "", nil)
		if !errors.Is(err, ErrInvalidApplicantID) {
			t.Fatalf("expected ErrInvalidApplicantID, got %v", err)
		}
	})

	t.Run("invalid household payload", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), "pet-1", "applicant-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidHousehold) {
			t.Fatalf("expected ErrInvalidHousehold, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.AdoptionApplication{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), "pet-1", "applicant-1", nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success emits submitted event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := newTestUseCase(repo, dispatcher)

		household := json.RawMessage(`{"home_type":"apartment","occupants":3}`)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.AdoptionApplication{})).DoAndReturn(
			func(_ context.Context, app entities.AdoptionApplication) (entities.AdoptionApplication, error) {
				if app.ID == "" || app.PetID != "pet-1" || app.ApplicantID != "applicant-1" {
					t.Fatalf("unexpected application: %+v", app)
				}
				if app.Status != entities.ApplicationStatusSubmitted || app.Version != 1 {
					t.Fatalf("unexpected status/version: %+v", app)
				}
				if app.SubmittedAt.IsZero() || app.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if app.Household["home_type"] != "apartment" {
					t.Fatalf("expected parsed household, got %+v", app.Household)
				}
				if app.Visit != nil || app.TerminationReason != nil {
					t.Fatalf("fresh application must have no visit or reason")
				}
				return app, nil
			},
		)
		dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event entities.LifecycleEvent) error {
				if event.Type != entities.EventApplicationSubmitted {
					t.Fatalf("unexpected event type: %s", event.Type)
				}
				if event.ApplicationID == "" || event.PetID != "pet-1" {
					t.Fatalf("unexpected event: %+v", event)
				}
				return nil
			},
		)

		res, err := uc.Submit(context.Background(), " pet-1 ", "applicant-1", household)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestAdoptionUseCase_Accept(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.Accept(context.Background(), "  ", "2026-08-30", "10:30")
		if !errors.Is(err, ErrInvalidApplicationID) {
			t.Fatalf("expected ErrInvalidApplicationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.AdoptionApplication{}, nil)

		_, err := uc.Accept(context.Background(), "app-1", "2026-08-30", "10:30")
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	t.Run("scheduling error leaves record untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(submittedApp("app-1"), nil)
		// No Save expectation: validation failures must not persist anything.

		_, err := uc.Accept(context.Background(), "app-1", "2026-08-30", "08:59")
		if !errors.Is(err, ErrOutsideVisitingHours) {
			t.Fatalf("expected ErrOutsideVisitingHours, got %v", err)
		}
	})

	t.Run("invalid from accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(acceptedApp("app-1"), nil)

		_, err := uc.Accept(context.Background(), "app-1", "2026-08-30", "10:30")
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("concurrent update surfaces conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(submittedApp("app-1"), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).Return(entities.AdoptionApplication{}, nil)

		_, err := uc.Accept(context.Background(), "app-1", "2026-08-30", "10:30")
		if !errors.Is(err, ErrApplicationConflict) {
			t.Fatalf("expected ErrApplicationConflict, got %v", err)
		}
	})

	t.Run("success stores visit and resets checklist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := newTestUseCase(repo, dispatcher)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(submittedApp("app-1"), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, app entities.AdoptionApplication, _ int64) (entities.AdoptionApplication, error) {
				if app.Status != entities.ApplicationStatusAccepted {
					t.Fatalf("expected accepted status, got %s", app.Status)
				}
				if app.Visit == nil || app.Visit.Date != "2026-08-30" || app.Visit.Time != "10:30" {
					t.Fatalf("unexpected visit: %+v", app.Visit)
				}
				if app.Checklist.CompliedPapers.IsChecked || app.Checklist.HomeVisitSuccessful.IsChecked {
					t.Fatalf("checklist must start unchecked")
				}
				if app.Version != 2 {
					t.Fatalf("expected version bump to 2, got %d", app.Version)
				}
				return app, nil
			},
		)
		dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event entities.LifecycleEvent) error {
				if event.Type != entities.EventApplicationAccepted || event.Visit == nil {
					t.Fatalf("unexpected event: %+v", event)
				}
				return nil
			},
		)

		res, err := uc.Accept(context.Background(), "app-1", "2026-08-30", "10:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ApplicationStatusAccepted {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("notification failure does not fail the operation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := newTestUseCase(repo, dispatcher)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(submittedApp("app-1"), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, app entities.AdoptionApplication, _ int64) (entities.AdoptionApplication, error) {
				return app, nil
			},
		)
		dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("chat down"))

		res, err := uc.Accept(context.Background(), "app-1", "2026-08-30", "10:30")
		if err != nil {
			t.Fatalf("accepted state must survive a failed notification, got %v", err)
		}
		if res.Status != entities.ApplicationStatusAccepted {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})
}

func TestAdoptionUseCase_Reject(t *testing.T) {
	t.Run("other with empty detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(submittedApp("app-1"), nil)

		_, err := uc.Reject(context.Background(), "app-1", "other", "  ")
		if !errors.Is(err, entities.ErrReasonDetailRequired) {
			t.Fatalf("expected ErrReasonDetailRequired, got %v", err)
		}
	})

	t.Run("unknown reason kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(submittedApp("app-1"), nil)

		_, err := uc.Reject(context.Background(), "app-1", "whatever", "")
		if !errors.Is(err, entities.ErrInvalidReasonKind) {
			t.Fatalf("expected ErrInvalidReasonKind, got %v", err)
		}
	})

	t.Run("invalid from accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(acceptedApp("app-1"), nil)

		_, err := uc.Reject(context.Background(), "app-1", "unsuitable_household", "")
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("success records reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := newTestUseCase(repo, dispatcher)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(submittedApp("app-1"), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, app entities.AdoptionApplication, _ int64) (entities.AdoptionApplication, error) {
				if app.Status != entities.ApplicationStatusRejected {
					t.Fatalf("expected rejected status, got %s", app.Status)
				}
				if app.TerminationReason == nil || app.TerminationReason.Kind != "incomplete_application" {
					t.Fatalf("unexpected reason: %+v", app.TerminationReason)
				}
				if app.Visit != nil {
					t.Fatalf("rejected application must not acquire a visit")
				}
				return app, nil
			},
		)
		dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event entities.LifecycleEvent) error {
				if event.Type != entities.EventApplicationRejected || event.Reason == nil {
					t.Fatalf("unexpected event: %+v", event)
				}
				return nil
			},
		)

		res, err := uc.Reject(context.Background(), "app-1", "incomplete_application", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ApplicationStatusRejected {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})
}

func TestAdoptionUseCase_MarkChecklistItem(t *testing.T) {
	t.Run("invalid from submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(submittedApp("app-1"), nil)

		_, err := uc.MarkChecklistItem(context.Background(), "app-1", "complied_papers", testNow)
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(acceptedApp("app-1"), nil)

		_, err := uc.MarkChecklistItem(context.Background(), "app-1", "papers", testNow)
		if !errors.Is(err, ErrInvalidChecklistItem) {
			t.Fatalf("expected ErrInvalidChecklistItem, got %v", err)
		}
	})

	t.Run("already checked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		app := acceptedApp("app-1")
		app.Checklist.CompliedPapers.Check(testNow.Add(-time.Hour))
		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(app, nil)

		_, err := uc.MarkChecklistItem(context.Background(), "app-1", "complied_papers", testNow)
		if !errors.Is(err, ErrAlreadyChecked) {
			t.Fatalf("expected ErrAlreadyChecked, got %v", err)
		}
	})

	t.Run("success stamps the item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := newTestUseCase(repo, dispatcher)

		at := testNow.Add(-30 * time.Minute)
		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(acceptedApp("app-1"), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, app entities.AdoptionApplication, _ int64) (entities.AdoptionApplication, error) {
				item := app.Checklist.CompliedPapers
				if !item.IsChecked || item.CheckedAt == nil || !item.CheckedAt.Equal(at) {
					t.Fatalf("unexpected checklist item: %+v", item)
				}
				if app.Status != entities.ApplicationStatusAccepted {
					t.Fatalf("checklist mark must not change status, got %s", app.Status)
				}
				return app, nil
			},
		)
		dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event entities.LifecycleEvent) error {
				if event.Type != entities.EventChecklistUpdated || event.ChecklistItem != entities.ChecklistItemCompliedPapers {
					t.Fatalf("unexpected event: %+v", event)
				}
				return nil
			},
		)

		_, err := uc.MarkChecklistItem(context.Background(), "app-1", "complied_papers", at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAdoptionUseCase_Complete(t *testing.T) {
	t.Run("checklist incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		app := acceptedApp("app-1")
		app.Checklist.CompliedPapers.Check(testNow)
		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(app, nil)

		_, err := uc.Complete(context.Background(), "app-1")
		if !errors.Is(err, ErrChecklistIncomplete) {
			t.Fatalf("expected ErrChecklistIncomplete, got %v", err)
		}
	})

	t.Run("invalid from submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(submittedApp("app-1"), nil)

		_, err := uc.Complete(context.Background(), "app-1")
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("success with both items checked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := newTestUseCase(repo, dispatcher)

		app := acceptedApp("app-1")
		app.Checklist.CompliedPapers.Check(testNow)
		app.Checklist.HomeVisitSuccessful.Check(testNow)
		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(app, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, saved entities.AdoptionApplication, _ int64) (entities.AdoptionApplication, error) {
				if saved.Status != entities.ApplicationStatusCompleted {
					t.Fatalf("expected completed status, got %s", saved.Status)
				}
				if saved.Visit == nil {
					t.Fatalf("completed application must keep its visit")
				}
				return saved, nil
			},
		)
		dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event entities.LifecycleEvent) error {
				if event.Type != entities.EventApplicationCompleted {
					t.Fatalf("unexpected event: %+v", event)
				}
				return nil
			},
		)

		res, err := uc.Complete(context.Background(), "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ApplicationStatusCompleted {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})
}

func TestAdoptionUseCase_Fail(t *testing.T) {
	t.Run("invalid from submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(submittedApp("app-1"), nil)

		_, err := uc.Fail(context.Background(), "app-1", "failed_home_visit", "")
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("success retains visit and checklist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := newTestUseCase(repo, dispatcher)

		app := acceptedApp("app-1")
		app.Checklist.CompliedPapers.Check(testNow.Add(-time.Hour))
		repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(app, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, saved entities.AdoptionApplication, _ int64) (entities.AdoptionApplication, error) {
				if saved.Status != entities.ApplicationStatusFailed {
					t.Fatalf("expected failed status, got %s", saved.Status)
				}
				if saved.Visit == nil || !saved.Checklist.CompliedPapers.IsChecked {
					t.Fatalf("failed application must keep visit and checklist for audit")
				}
				if saved.TerminationReason == nil || saved.TerminationReason.Kind != "failed_home_visit" {
					t.Fatalf("unexpected reason: %+v", saved.TerminationReason)
				}
				return saved, nil
			},
		)
		dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Fail(context.Background(), "app-1", "failed_home_visit", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ApplicationStatusFailed {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})
}

func TestAdoptionUseCase_TerminalStatesAreImmutable(t *testing.T) {
	terminal := []entities.ApplicationStatus{
		entities.ApplicationStatusCompleted,
		entities.ApplicationStatusRejected,
		entities.ApplicationStatusFailed,
	}

	type op struct {
		name string
		call func(uc *AdoptionUseCase) error
	}
	ops := []op{
		{"accept", func(uc *AdoptionUseCase) error {
			_, err := uc.Accept(context.Background(), "app-1", "2026-08-30", "10:30")
			return err
		}},
		{"reject", func(uc *AdoptionUseCase) error {
			_, err := uc.Reject(context.Background(), "app-1", "unsuitable_household", "")
			return err
		}},
		{"checklist", func(uc *AdoptionUseCase) error {
			_, err := uc.MarkChecklistItem(context.Background(), "app-1", "complied_papers", testNow)
			return err
		}},
		{"complete", func(uc *AdoptionUseCase) error {
			_, err := uc.Complete(context.Background(), "app-1")
			return err
		}},
		{"fail", func(uc *AdoptionUseCase) error {
			_, err := uc.Fail(context.Background(), "app-1", "failed_home_visit", "")
			return err
		}},
	}

	for _, status := range terminal {
		for _, o := range ops {
			t.Run(string(status)+" "+o.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
				uc := newTestUseCase(repo, nil)

				app := acceptedApp("app-1")
				app.Status = status
				repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(app, nil)

				if err := o.call(uc); !errors.Is(err, ErrInvalidStateTransition) {
					t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
				}
			})
		}
	}
}

func TestAdoptionUseCase_Getters(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.AdoptionApplication{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	t.Run("list validations", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		if _, err := uc.ListByPetID(context.Background(), " "); !errors.Is(err, ErrInvalidPetID) {
			t.Fatalf("expected ErrInvalidPetID, got %v", err)
		}
		if _, err := uc.ListByApplicantID(context.Background(), ""); !errors.Is(err, ErrInvalidApplicantID) {
			t.Fatalf("expected ErrInvalidApplicantID, got %v", err)
		}
	})

	t.Run("list by pet id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().ListByPetID(gomock.Any(), "pet-1").Return([]entities.AdoptionApplication{submittedApp("a"), acceptedApp("b")}, nil)

		apps, err := uc.ListByPetID(context.Background(), "pet-1")
		if err != nil || len(apps) != 2 {
			t.Fatalf("unexpected result: %v apps=%d", err, len(apps))
		}
	})
}

// Full happy path against a stateful in-memory repo double: submit, accept,
// two checklist marks, complete. Mirrors the workflow a staff member drives
// from the mobile client.
func TestAdoptionUseCase_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAdoptionRepository(ctrl)
	dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
	uc := newTestUseCase(repo, dispatcher)

	store := map[string]entities.AdoptionApplication{}
	var events []entities.LifecycleEventType

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app entities.AdoptionApplication) (entities.AdoptionApplication, error) {
			store[app.ID] = app
			return app, nil
		},
	).AnyTimes()
	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (entities.AdoptionApplication, error) {
			return store[id], nil
		},
	).AnyTimes()
	repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app entities.AdoptionApplication, expected int64) (entities.AdoptionApplication, error) {
			if store[app.ID].Version != expected {
				return entities.AdoptionApplication{}, nil
			}
			store[app.ID] = app
			return app, nil
		},
	).AnyTimes()
	dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event entities.LifecycleEvent) error {
			events = append(events, event.Type)
			return nil
		},
	).AnyTimes()

	app, err := uc.Submit(context.Background(), "pet-7", "applicant-9", json.RawMessage(`{"home_type":"house"}`))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	app, err = uc.Accept(context.Background(), app.ID, "2026-08-29", "10:30")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if app.Visit == nil || app.Visit.Date != "2026-08-29" {
		t.Fatalf("unexpected visit: %+v", app.Visit)
	}

	// Completing with an unfinished checklist must be refused.
	if _, err := uc.MarkChecklistItem(context.Background(), app.ID, "complied_papers", testNow); err != nil {
		t.Fatalf("checklist papers: %v", err)
	}
	if _, err := uc.Complete(context.Background(), app.ID); !errors.Is(err, ErrChecklistIncomplete) {
		t.Fatalf("expected ErrChecklistIncomplete, got %v", err)
	}

	if _, err := uc.MarkChecklistItem(context.Background(), app.ID, "home_visit_successful", testNow); err != nil {
		t.Fatalf("checklist home visit: %v", err)
	}
	app, err = uc.Complete(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if app.Status != entities.ApplicationStatusCompleted {
		t.Fatalf("unexpected final status: %s", app.Status)
	}

	// Terminal: nothing else is allowed.
	if _, err := uc.Fail(context.Background(), app.ID, "other", "x"); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}

	want := []entities.LifecycleEventType{
		entities.EventApplicationSubmitted,
		entities.EventApplicationAccepted,
		entities.EventChecklistUpdated,
		entities.EventChecklistUpdated,
		entities.EventApplicationCompleted,
	}
	if len(events) != len(want) {
		t.Fatalf("unexpected events: %v", events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d = %s, want %s", i, events[i], want[i])
		}
	}
}
