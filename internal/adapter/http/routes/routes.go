package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "distrimed/docs" // This will be auto-generated
	"distrimed/internal/adapter/http/handlers"
	repository2 "distrimed/internal/adapter/persistence/repository"
	"distrimed/internal/domain/entities"
	"distrimed/internal/infrastructure/automation"
	"distrimed/internal/infrastructure/database"
	"distrimed/internal/infrastructure/freight"
	"distrimed/internal/infrastructure/payments"
	"distrimed/internal/usecase"
	"distrimed/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	bandRepo := repository2.NewShippingBandDynamoRepository(ddb)

	var preferenceGateway interfaces.IPreferenceGateway
	mpGateway, err := payments.NewMercadoPagoPreferenceGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		preferenceGateway = mpGateway
	}

	freightGateway := freight.NewHTTPQuoteClient(os.Getenv("FREIGHT_SERVICE_URL"), os.Getenv("FREIGHT_SERVICE_TOKEN"))

	var workflowTrigger interfaces.IWorkflowTrigger
	if url := os.Getenv("WORKFLOW_WEBHOOK_URL"); url != "" {
		workflowTrigger = automation.NewWebhookWorkflowTrigger(url)
	} else {
		log.Printf("Workflow webhook not configured: WORKFLOW_WEBHOOK_URL is empty")
	}

	bandUseCase := usecase.NewShippingBandUseCase(bandRepo)
	resolverBands := loadResolverBands(bandUseCase)
	resolver := usecase.NewShippingResolverUseCase(
		freightGateway,
		resolverBands,
		usecase.SelectionPolicy(os.Getenv("SHIPPING_SELECTION_POLICY")),
		os.Getenv("ORIGIN_ZIP_CODE"),
	)

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	converter := usecase.NewOrderConverterUseCase(
		quotationRepo,
		orderRepo,
		productRepo,
		notificationRepo,
		preferenceGateway,
		workflowTrigger,
		os.Getenv("PAYMENT_LINK_BASE_URL"),
	)

	shippingHandler := handlers.NewShippingHandler(resolver, bandUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase, converter)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCommerceRoutes(v1, shippingHandler, quotationHandler, orderHandler)
}

// loadResolverBands seeds the resolver with the admin table; any failure here
// just means the compiled defaults are used.
func loadResolverBands(bands usecase.IShippingBandUseCase) []entities.RegionalBand {
	loaded, err := bands.List(context.Background())
	if err != nil {
		log.Printf("Failed to load regional bands, using defaults: %v", err)
		return nil
	}
	return loaded
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
