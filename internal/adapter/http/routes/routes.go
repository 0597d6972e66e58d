package routes

import (
	"context"
	"log"
	"net/http"

	_ "eto_pipeline/docs"
	"eto_pipeline/internal/adapter/http/handlers"
	"eto_pipeline/internal/adapter/persistence/memory"
	"eto_pipeline/internal/adapter/persistence/repository"
	"eto_pipeline/internal/config"
	"eto_pipeline/internal/infrastructure/database"
	"eto_pipeline/internal/usecase"
	"eto_pipeline/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Orders     *handlers.OrderHandler
	Conversion *handlers.ConversionHandler
	BOQ        *handlers.BOQHandler
	Drawings   *handlers.DrawingHandler
	Production *handlers.ProductionHandler
}

type repositories struct {
	orders      interfaces.IOrderRepository
	boqs        interfaces.IBOQRepository
	drawings    interfaces.IDrawingRepository
	salesOrders interfaces.ISalesOrderRepository
	workOrders  interfaces.IWorkOrderRepository
	journeys    interfaces.IJourneyRepository
}

// Run will start the server
func Run(cfg *config.Config) {
	router := NewRouter(newHandlers(cfg, newRepositories(cfg)))

	log.Printf("[http][routes] listening port=%s env=%s storage=%s", cfg.HTTPPort, cfg.Env, cfg.StorageDriver)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with middlewares, docs and /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, h.Orders, h.Conversion)
	addEngineeringRoutes(v1, h.BOQ, h.Drawings)
	addProductionRoutes(v1, h.Conversion, h.Production)
	return router
}

func newHandlers(cfg *config.Config, repos repositories) Handlers {
	orderUseCase := usecase.NewOrderUseCase(repos.orders, repos.boqs, repos.drawings, repos.salesOrders, cfg.TaxRate())
	conversionUseCase := usecase.NewConversionUseCase(repos.orders, repos.salesOrders)
	boqUseCase := usecase.NewBOQUseCase(repos.boqs, repos.orders)
	drawingUseCase := usecase.NewDrawingUseCase(repos.drawings, repos.orders)
	productionUseCase := usecase.NewProductionUseCase(repos.salesOrders, repos.workOrders, repos.journeys)

	return Handlers{
		Orders:     handlers.NewOrderHandler(orderUseCase),
		Conversion: handlers.NewConversionHandler(conversionUseCase),
		BOQ:        handlers.NewBOQHandler(boqUseCase),
		Drawings:   handlers.NewDrawingHandler(drawingUseCase),
		Production: handlers.NewProductionHandler(productionUseCase),
	}
}

func newRepositories(cfg *config.Config) repositories {
	if cfg.StorageDriver == config.StorageMemory {
		log.Printf("[http][routes] using in-memory storage, data is lost on restart")
		return memoryRepositories()
	}

	ddb := database.ConnectDynamoDB(context.Background(), cfg.DynamoDB)
	return repositories{
		orders:      repository.NewOrderDynamoRepository(ddb, cfg.Tables.Orders),
		boqs:        repository.NewBOQDynamoRepository(ddb, cfg.Tables.BOQs),
		drawings:    repository.NewDrawingDynamoRepository(ddb, cfg.Tables.Drawings),
		salesOrders: repository.NewSalesOrderDynamoRepository(ddb, cfg.Tables.SalesOrders),
		workOrders:  repository.NewWorkOrderDynamoRepository(ddb, cfg.Tables.WorkOrders),
		journeys:    repository.NewJourneyDynamoRepository(ddb, cfg.Tables.Journeys),
	}
}

func memoryRepositories() repositories {
	return repositories{
		orders:      memory.NewOrderRepository(),
		boqs:        memory.NewBOQRepository(),
		drawings:    memory.NewDrawingRepository(),
		salesOrders: memory.NewSalesOrderRepository(),
		workOrders:  memory.NewWorkOrderRepository(),
		journeys:    memory.NewJourneyRepository(),
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
