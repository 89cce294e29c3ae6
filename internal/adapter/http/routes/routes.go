package routes

import (
	"log"
	"os"
	"strconv"

	_ "tsmit_os/docs" // This will be auto-generated
	"tsmit_os/internal/adapter/http/handlers"
	repository2 "tsmit_os/internal/adapter/persistence/repository"
	"tsmit_os/internal/infrastructure/database"
	"tsmit_os/internal/infrastructure/messaging"
	"tsmit_os/internal/usecase"
	"tsmit_os/internal/usecase/interfaces"

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

	statusRepo := repository2.NewStatusDynamoRepository(ddb)
	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	serviceRepo := repository2.NewProvidedServiceDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	emailSender := buildEmailSender(settingsRepo)
	whatsappSender := messaging.NewWhatsappWebhookGateway(settingsRepo)

	statusUseCase := usecase.NewStatusUseCase(statusRepo)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, statusRepo, clientRepo, serviceRepo, emailSender, whatsappSender)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	serviceUseCase := usecase.NewProvidedServiceUseCase(serviceRepo, clientRepo)

	statusHandler := handlers.NewStatusHandler(statusUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	serviceHandler := handlers.NewProvidedServiceHandler(serviceUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, statusHandler, orderHandler)
	addRegistryRoutes(v1, clientHandler, serviceHandler)
}

// buildEmailSender picks the email transport. MailerSend is the default;
// EMAIL_TRANSPORT=smtp switches to direct SMTP delivery. With neither
// configured the engine reports "not configured" per update instead of
// failing at boot.
func buildEmailSender(settingsRepo interfaces.ISettingsRepository) interfaces.IEmailSender {
	if os.Getenv("EMAIL_TRANSPORT") == "smtp" {
		return messaging.NewSMTPSender(settingsRepo)
	}

	gateway, err := messaging.NewMailerSendGateway(os.Getenv("MAILERSEND_API_KEY"), settingsRepo)
	if err != nil {
		log.Printf("Email gateway not configured: %v", err)
		return nil
	}
	return gateway
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
