package routes

import (
	"eto_pipeline/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSalesOrders = "/sales-orders"
	PathWorkOrders  = "/work-orders"
	PathJourneys    = "/journeys"
)

func addProductionRoutes(rg *gin.RouterGroup, conversionHandler *handlers.ConversionHandler, productionHandler *handlers.ProductionHandler) {
	salesOrders := rg.Group(PathSalesOrders)
	{
		salesOrders.GET("/:id", conversionHandler.GetSalesOrder)
		salesOrders.POST("/:id/work-orders", productionHandler.CreateWorkOrder)
	}

	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.GET("/:id", productionHandler.GetWorkOrder)
		workOrders.PATCH("/:id/status", productionHandler.AdvanceWorkOrderStatus)
		workOrders.PATCH("/:id/progress", productionHandler.SetWorkOrderProgress)
		workOrders.POST("/:id/journeys", productionHandler.CreateJourney)
	}

	journeys := rg.Group(PathJourneys)
	{
		journeys.GET("/:id", productionHandler.GetJourney)
		journeys.PUT("/:id/resources", productionHandler.AssignJourneyResources)
		journeys.PATCH("/:id/steps/:step", productionHandler.SetJourneyStepStatus)
		journeys.PATCH("/:id/status", productionHandler.SetJourneyStatus)
	}
}
