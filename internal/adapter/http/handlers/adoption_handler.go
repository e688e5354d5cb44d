package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	request "abrigo_xpto/internal/adapter/http/dto/request"
	response "abrigo_xpto/internal/adapter/http/dto/response"
	"abrigo_xpto/internal/domain/entities"
	"abrigo_xpto/internal/usecase"
	"abrigo_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAdoptionPayload = pkg.NewDomainErrorSimple("INVALID_ADOPTION_INPUT", "Invalid adoption payload", http.StatusBadRequest)
)

// AdoptionHandler handles HTTP requests for the adoption-application
// lifecycle. Authorization is an upstream concern: by the time a request
// lands here, the gateway has already established that the caller may invoke
// staff actions.

type AdoptionHandler struct {
	usecase usecase.IAdoptionUseCase
}

func NewAdoptionHandler(uc usecase.IAdoptionUseCase) *AdoptionHandler {
	return &AdoptionHandler{usecase: uc}
}

// SubmitApplication registers a new adoption request for a pet.
func (h *AdoptionHandler) SubmitApplication(c *gin.Context) {
	var payload request.SubmitAdoptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdoptionPayload.HTTPStatus, errInvalidAdoptionPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Submit(c.Request.Context(), payload.ResolvePetID(), payload.ResolveApplicantID(), payload.Household)
	if err != nil {
		appErr := mapAdoptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAdoptionApplication(app))
}

// GetApplication returns one application by id.
func (h *AdoptionHandler) GetApplication(c *gin.Context) {
	app, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAdoptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdoptionApplication(app))
}

// ListApplications lists applications for a pet or an applicant.
func (h *AdoptionHandler) ListApplications(c *gin.Context) {
	petID := c.Query("pet_id")
	applicantID := c.Query("applicant_id")

	var (
		apps []entities.AdoptionApplication
		err  error
	)
	switch {
	case petID != "":
		apps, err = h.usecase.ListByPetID(c.Request.Context(), petID)
	case applicantID != "":
		apps, err = h.usecase.ListByApplicantID(c.Request.Context(), applicantID)
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Either pet_id or applicant_id query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapAdoptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdoptionApplications(apps))
}

// AcceptApplication accepts a submitted application and schedules the visit.
func (h *AdoptionHandler) AcceptApplication(c *gin.Context) {
	id := c.Param("id")
	var payload request.AcceptAdoptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdoptionPayload.HTTPStatus, errInvalidAdoptionPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Accept(c.Request.Context(), id, payload.VisitDate, payload.VisitTime)
	if err != nil {
		log.Printf("[adoption][handler] accept failed application_id=%s err=%v", id, err)
		appErr := mapAdoptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdoptionApplication(app))
}

// RejectApplication terminally refuses a submitted application.
func (h *AdoptionHandler) RejectApplication(c *gin.Context) {
	h.terminateByRequest(c, h.usecase.Reject)
}

// FailApplication terminally aborts an accepted application.
func (h *AdoptionHandler) FailApplication(c *gin.Context) {
	h.terminateByRequest(c, h.usecase.Fail)
}

func (h *AdoptionHandler) terminateByRequest(
	c *gin.Context,
	terminate func(ctx context.Context, id, reasonKind, reasonDetail string) (entities.AdoptionApplication, error),
) {
	id := c.Param("id")
	var payload request.TerminateAdoptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdoptionPayload.HTTPStatus, errInvalidAdoptionPayload.ToHTTPError())
		return
	}

	app, err := terminate(c.Request.Context(), id, payload.Reason, payload.Detail)
	if err != nil {
		log.Printf("[adoption][handler] terminate failed application_id=%s reason=%s err=%v", id, payload.Reason, err)
		appErr := mapAdoptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdoptionApplication(app))
}

// MarkChecklistItem records one fulfilled pre-completion requirement.
func (h *AdoptionHandler) MarkChecklistItem(c *gin.Context) {
	id := c.Param("id")
	var payload request.ChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdoptionPayload.HTTPStatus, errInvalidAdoptionPayload.ToHTTPError())
		return
	}

	var checkedAt time.Time
	if payload.CheckedAt != "" {
		t, err := time.Parse(time.RFC3339, payload.CheckedAt)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "checked_at must be an RFC3339 timestamp", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		checkedAt = t
	}

	app, err := h.usecase.MarkChecklistItem(c.Request.Context(), id, payload.Item, checkedAt)
	if err != nil {
		log.Printf("[adoption][handler] checklist failed application_id=%s item=%s err=%v", id, payload.Item, err)
		appErr := mapAdoptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdoptionApplication(app))
}

// CompleteApplication finalizes the adoption once the checklist is done.
func (h *AdoptionHandler) CompleteApplication(c *gin.Context) {
	id := c.Param("id")
	app, err := h.usecase.Complete(c.Request.Context(), id)
	if err != nil {
		log.Printf("[adoption][handler] complete failed application_id=%s err=%v", id, err)
		appErr := mapAdoptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdoptionApplication(app))
}

func mapAdoptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidApplicationID), errors.Is(err, usecase.ErrInvalidPetID),
		errors.Is(err, usecase.ErrInvalidApplicantID), errors.Is(err, usecase.ErrInvalidHousehold):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Adoption application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStateTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", "Operation not allowed in the application's current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidVisitDate):
		return pkg.NewDomainErrorSimple("INVALID_VISIT_DATE", "Visit date must be a valid YYYY-MM-DD date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVisitTime):
		return pkg.NewDomainErrorSimple("INVALID_VISIT_TIME", "Visit time must be a valid HH:MM time", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPastVisitDate):
		return pkg.NewDomainErrorSimple("VISIT_DATE_IN_PAST", "Visit date cannot be in the past", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOutsideVisitingHours):
		return pkg.NewDomainErrorSimple("VISIT_OUT_OF_HOURS", "Visit time must be between 9 AM and 3 PM", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidReasonKind):
		return pkg.NewDomainErrorSimple("INVALID_REASON", "Reason is not a recognized category", http.StatusBadRequest)
	case errors.Is(err, entities.ErrReasonDetailRequired):
		return pkg.NewDomainErrorSimple("REASON_DETAIL_REQUIRED", "Detail text is required when the reason is 'other'", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidChecklistItem):
		return pkg.NewDomainErrorSimple("INVALID_CHECKLIST_ITEM", "Checklist item must be complied_papers or home_visit_successful", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyChecked):
		return pkg.NewDomainErrorSimple("CHECKLIST_ITEM_ALREADY_CHECKED", "Checklist item has already been checked", http.StatusConflict)
	case errors.Is(err, usecase.ErrChecklistIncomplete):
		return pkg.NewDomainErrorSimple("CHECKLIST_INCOMPLETE", "Both checklist items must be checked before completion", http.StatusConflict)
	case errors.Is(err, usecase.ErrApplicationConflict):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "The application was modified concurrently, reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
