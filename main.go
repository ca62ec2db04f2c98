package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tienda/internal/handlers"
	"tienda/internal/middleware"
	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"
	"tienda/pkg/rabbitmq"
)

// NewApp wires repositories, services and handlers into a Fiber app.
// events may be nil when no message broker is configured.
func NewApp(db *gorm.DB, events services.EventPublisher, jwtSecret, staticDir string) *fiber.App {
	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	productService := services.NewProductService(productRepo, events)
	authService := services.NewAuthService(userRepo, jwtSecret)
	seedService := services.NewSeedService(productService, userRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	seedHandler := handlers.NewSeedHandler(seedService)
	filesHandler := handlers.NewFilesHandler(staticDir)

	// --- Middleware ---
	authRequired := middleware.AuthRequired(authService, userRepo)
	adminOnly := middleware.RoleRequired(models.RoleAdmin)

	app := fiber.New()
	app.Use(logger.New()) // Request logger

	api := app.Group("/api")
	authHandler.RegisterRoutes(api, authRequired)
	productHandler.RegisterRoutes(api, authRequired, adminOnly)
	seedHandler.RegisterRoutes(api)
	filesHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=tienda port=5432 sslmode=disable")
	viper.SetDefault("JWT_SECRET", "change_me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("STATIC_DIR", "./static/products")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")
	jwtSecret := viper.GetString("JWT_SECRET")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	staticDir := viper.GetString("STATIC_DIR")

	// --- Database ---
	// TranslateError makes uniqueness violations surface as
	// gorm.ErrDuplicatedKey, which the service layer relies on.
	db, err := gorm.Open(postgres.Open(databaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.ProductImage{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Message broker (optional) ---
	var events services.EventPublisher
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, catalog events disabled: %v", err)
		} else {
			defer mqClient.Close()
			events = mqClient
		}
	}

	app := NewApp(db, events, jwtSecret, staticDir)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
