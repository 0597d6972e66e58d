package routes

import (
	"eto_pipeline/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBOQs     = "/boqs"
	PathDrawings = "/drawings"
)

func addEngineeringRoutes(rg *gin.RouterGroup, boqHandler *handlers.BOQHandler, drawingHandler *handlers.DrawingHandler) {
	rg.POST(PathOrders+"/:id/boq", boqHandler.GenerateBOQ)
	rg.POST(PathOrders+"/:id/drawings", drawingHandler.SubmitDrawing)

	boqs := rg.Group(PathBOQs)
	{
		boqs.GET("/:id", boqHandler.GetBOQ)
		boqs.POST("/:id/items", boqHandler.AddItem)
		boqs.PATCH("/:id/items/:itemId", boqHandler.UpdateItem)
		boqs.DELETE("/:id/items/:itemId", boqHandler.RemoveItem)
		boqs.PATCH("/:id/eto-status", boqHandler.SetETOStatus)
	}

	drawings := rg.Group(PathDrawings)
	{
		drawings.GET("/:id", drawingHandler.GetDrawing)
		drawings.POST("/:id/approvals/:approvalId/decision", drawingHandler.RecordApprovalDecision)
		drawings.POST("/:id/approvals/:approvalId/resubmit", drawingHandler.ResubmitApproval)
		drawings.POST("/:id/comments", drawingHandler.AddComment)
		drawings.POST("/:id/comments/:commentId/resolve", drawingHandler.ResolveComment)
		drawings.POST("/:id/revise", drawingHandler.ReviseDrawing)
	}
}
