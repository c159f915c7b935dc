package routes

import (
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHandler   = "/handler"
	PathDocuments = "/documents"
)

func addInsuranceRoutes(r *gin.Engine, actionHandler *handlers.ActionHandler, documentHandler *handlers.DocumentHandler) {
	// Primary entry point: function-style action envelope.
	r.POST("/", actionHandler.Handle)
	r.POST(PathHandler, actionHandler.Handle)

	// Secondary entry point: print form by policy number in the path.
	r.GET(PathDocuments+"/:policy_number", documentHandler.GetByPolicyNumber)
}
