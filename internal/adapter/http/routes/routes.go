package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "fleetflow_quotes/docs" // This will be auto-generated
	"fleetflow_quotes/internal/adapter/http/handlers"
	repository2 "fleetflow_quotes/internal/adapter/persistence/repository"
	"fleetflow_quotes/internal/infrastructure/database"
	"fleetflow_quotes/internal/infrastructure/distance"
	"fleetflow_quotes/internal/infrastructure/recommender"
	"fleetflow_quotes/internal/usecase"
	"fleetflow_quotes/internal/usecase/interfaces"

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
	quoteRepo := newQuoteRepository()

	staticRecommender := recommender.NewStaticRecommender()
	pricingUseCase := usecase.NewPricingUseCase(distance.NewFixedEstimator(), staticRecommender)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, pricingUseCase, staticRecommender)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, pricingUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
}

// newQuoteRepository picks the quote store. The in-memory store is the
// default; QUOTE_STORE=dynamodb switches to the persistent one.
func newQuoteRepository() interfaces.IQuoteRepository {
	if strings.EqualFold(os.Getenv("QUOTE_STORE"), "dynamodb") {
		log.Printf("[quote][routes] using DynamoDB quote store")
		return repository2.NewQuoteDynamoRepository(database.ConnectDynamoDB())
	}
	log.Printf("[quote][routes] using in-memory quote store")
	return repository2.NewQuoteMemoryRepository()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(500, gin.H{"success": false, "error": "Internal server error"})
	}))
}
