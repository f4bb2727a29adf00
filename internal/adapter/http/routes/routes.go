package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "lavaja/docs" // This will be auto-generated
	"lavaja/internal/adapter/http/handlers"
	"lavaja/internal/adapter/http/middleware"
	repository2 "lavaja/internal/adapter/persistence/repository"
	"lavaja/internal/config"
	"lavaja/internal/infrastructure/database"
	"lavaja/internal/infrastructure/notify"
	"lavaja/internal/infrastructure/payments"
	"lavaja/internal/infrastructure/pricing"
	"lavaja/internal/usecase"
	"lavaja/internal/usecase/interfaces"
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
	cfg := config.FromEnv()
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	cycleRepo := repository2.NewCycleDynamoRepository(ddb)
	commandRepo := repository2.NewCommandDynamoRepository(ddb)
	machineRepo := repository2.NewMachineDynamoRepository(ddb)
	fleetRepo := repository2.NewFleetDynamoRepository(ddb)
	ackRepo := repository2.NewAckDynamoRepository(ddb)
	kitAuditRepo := repository2.NewKitAuditDynamoRepository(ddb)
	orchestrationStore := repository2.NewOrchestrationDynamoStore(ddb, cycleRepo, commandRepo)

	var provider interfaces.IPaymentProvider
	mpProvider, err := payments.NewMercadoPagoProvider(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago provider not configured: %v", err)
	} else {
		provider = mpProvider
	}

	var notifier interfaces.INotifier
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kafkaNotifier, err := notify.NewKafkaNotifierFromEnv(brokers, os.Getenv("KAFKA_EVENTS_TOPIC"))
		if err != nil {
			log.Printf("Kafka notifier not configured: %v", err)
		} else {
			notifier = kafkaNotifier
		}
	}

	pricingUseCase := usecase.NewPricingUseCase(machineRepo, cycleRepo, pricing.NewMachinePriceQuoter())
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, pricingUseCase, provider, notifier, "mercadopago")
	orchestratorUseCase := usecase.NewOrchestratorUseCase(orchestrationStore, paymentRepo, machineRepo, fleetRepo, cfg)
	protocolUseCase := usecase.NewGatewayProtocolUseCase(commandRepo, cycleRepo, machineRepo, ackRepo, fleetRepo, notifier, cfg)
	reconcilerUseCase := usecase.NewReconcilerUseCase(commandRepo, cycleRepo, machineRepo, cfg)
	kitUseCase := usecase.NewKitUseCase(fleetRepo, machineRepo, commandRepo, cycleRepo, kitAuditRepo, reconcilerUseCase, notifier)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, cfg)
	orchestrationHandler := handlers.NewOrchestrationHandler(orchestratorUseCase, pricingUseCase, cfg)
	deviceHandler := handlers.NewDeviceHandler(protocolUseCase)
	kitHandler := handlers.NewKitHandler(kitUseCase, cfg)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, paymentHandler, orchestrationHandler)
	addKitRoutes(v1, kitHandler)

	// Rotas de dispositivo (assinatura HMAC obrigatoria)
	addDeviceRoutes(v1, deviceHandler, middleware.DeviceAuth(fleetRepo, cfg))
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
