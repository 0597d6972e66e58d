package routes

import (
	"eto_pipeline/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathRevisions = "/revisions"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, conversionHandler *handlers.ConversionHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.GET("/:id/stage", orderHandler.GetStage)
		orders.GET("/:id/pipeline", orderHandler.GetPipeline)
		orders.POST("/:id/items", orderHandler.AddItem)
		orders.PATCH("/:id/items/:itemId", orderHandler.UpdateItem)
		orders.DELETE("/:id/items/:itemId", orderHandler.RemoveItem)
		orders.POST("/:id/draft", orderHandler.SaveDraft)
		orders.POST("/:id/engineering", orderHandler.AttachEngineering)

		orders.POST("/:id/send", conversionHandler.SendToCustomer)
		orders.POST("/:id/decision", conversionHandler.RecordCustomerDecision)
		orders.POST("/:id/po", conversionHandler.MarkPOReceived)
		orders.POST("/:id/convert", conversionHandler.ConvertToSalesOrder)
	}

	rg.GET(PathRevisions+"/next", orderHandler.NextRevision)
}
