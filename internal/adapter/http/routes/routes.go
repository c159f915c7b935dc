package routes

import (
	"context"
	"log"
	"os"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/adapter/http/handlers"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/adapter/persistence/repository"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/infrastructure/config"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/infrastructure/credentials"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/infrastructure/database"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/infrastructure/insurance"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/infrastructure/storage"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/usecase"

	"github.com/gin-gonic/gin"
)

var router = gin.Default()

// Run wires the dependency graph and starts the server.
func Run() {
	setMiddlewares()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration invalid: %v", err)
	}

	getRoutes(cfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes(cfg config.Config) {
	infraTokens := credentials.NewInfraTokenSource(cfg.MetadataEndpoint)
	partnerTokens, err := credentials.NewPartnerTokenSource(cfg.PartnerBaseURL, cfg.PartnerClientID, cfg.PartnerClientSecret)
	if err != nil {
		log.Fatalf("Partner credentials invalid: %v", err)
	}

	pools := database.NewPoolProvider(cfg.DatabaseURL(), infraTokens)
	recorder := repository.NewTransactionPgxRepository(pools)

	gateway := insurance.NewVSKGateway(cfg.PartnerBaseURL)

	archiver, err := storage.NewS3Archiver(context.Background(), cfg.StorageBucket, cfg.StorageEndpoint, cfg.StorageRegion, cfg.StorageAccessKeyID, cfg.StorageSecretAccessKey)
	if err != nil {
		log.Fatalf("Object storage client failed: %v", err)
	}

	orchestrator := usecase.NewInsuranceOrchestrator(partnerTokens, gateway, recorder, archiver, cfg.PaymentSuccessURL, cfg.PaymentFailURL)

	actionHandler := handlers.NewActionHandler(orchestrator)
	documentHandler := handlers.NewDocumentHandler(orchestrator)

	addPingRoutes(router.Group("/"))
	addInsuranceRoutes(router, actionHandler, documentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
