package routes

import (
	"abrigo_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAdoptions = "/adoptions"
)

func addAdoptionRoutes(rg *gin.RouterGroup, adoptionHandler *handlers.AdoptionHandler) {
	adoptions := rg.Group(PathAdoptions)
	{
		adoptions.POST("", adoptionHandler.SubmitApplication)
		adoptions.GET("", adoptionHandler.ListApplications)
		adoptions.GET("/:id", adoptionHandler.GetApplication)

		// Lifecycle transitions (staff actions).
		adoptions.PATCH("/:id/accept", adoptionHandler.AcceptApplication)
		adoptions.PATCH("/:id/reject", adoptionHandler.RejectApplication)
		adoptions.PATCH("/:id/checklist", adoptionHandler.MarkChecklistItem)
		adoptions.PATCH("/:id/complete", adoptionHandler.CompleteApplication)
		adoptions.PATCH("/:id/fail", adoptionHandler.FailApplication)
	}
}
