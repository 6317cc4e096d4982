package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"echo_api/internal/database"
	"echo_api/internal/handlers"
	"echo_api/internal/models"
	"echo_api/internal/routes"
	"echo_api/internal/services"
)

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	registry, err := models.DefaultRegistry()
	if err != nil {
		log.Fatalf("failed to build table registry: %v", err)
	}

	// The declared schema must match the live database before any request is
	// served; drift between code and database is a startup failure, not a
	// runtime surprise.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := database.ValidateLive(ctx, database.NewInspector(pool), registry); err != nil {
			log.Fatalf("schema validation failed: %v", err)
		}
		log.Println("Database schema validated successfully")
	}

	manager := database.NewManager(pool, registry)

	// Dependency injection
	organizationService := services.NewOrganizationService(manager)
	userService := services.NewUserService(manager)
	studyService := services.NewStudyService(manager)
	taskService := services.NewTaskService(manager)
	participantService := services.NewParticipantService(manager)

	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	studyHandler := handlers.NewStudyHandler(studyService)
	taskHandler := handlers.NewTaskHandler(taskService)
	participantHandler := handlers.NewParticipantHandler(participantService)
	schemaHandler := handlers.NewSchemaHandler(manager)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, organizationHandler, userHandler, studyHandler, taskHandler, participantHandler, schemaHandler)

	// Create and configure the HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
