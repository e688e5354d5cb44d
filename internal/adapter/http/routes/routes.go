package routes

import (
	"log"
	"os"
	"strconv"

	_ "abrigo_xpto/docs" // This will be auto-generated
	"abrigo_xpto/internal/adapter/http/handlers"
	repository2 "abrigo_xpto/internal/adapter/persistence/repository"
	"abrigo_xpto/internal/infrastructure/database"
	"abrigo_xpto/internal/infrastructure/notifications"
	"abrigo_xpto/internal/usecase"
	"abrigo_xpto/internal/usecase/interfaces"

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

	adoptionRepo := repository2.NewAdoptionDynamoRepository(ddb)

	var dispatcher interfaces.INotificationDispatcher
	chatNotifier, err := notifications.NewChatNotifier(os.Getenv("CHAT_SERVICE_URL"))
	if err != nil {
		log.Printf("Chat notifier not configured: %v", err)
	} else {
		dispatcher = chatNotifier
	}

	adoptionUseCase := usecase.NewAdoptionUseCase(adoptionRepo, dispatcher)
	adoptionHandler := handlers.NewAdoptionHandler(adoptionUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAdoptionRoutes(v1, adoptionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
