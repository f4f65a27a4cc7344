package main

import (
	"log"
	"os"
	"strconv"

	_ "walks-api/api/swagger" // swagger docs
	"walks-api/internal/database"
	"walks-api/internal/handler"
	"walks-api/internal/realtime"
	"walks-api/internal/repository"
	"walks-api/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title           Walks API
// @version         1.0
// @description     CRUD API over regions and walks with JWT bearer authentication.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	walksDSN := buildDSN("DB")
	authDSN := os.Getenv("AUTH_DB_DSN")
	if authDSN == "" {
		// Identity data shares the application database unless split out
		authDSN = walksDSN
	}

	walksDB, err := database.NewWalksConnection(walksDSN)
	if err != nil {
		log.Fatalf("Walks database connection failed: %v", err)
	}
	authDB, err := database.NewAuthConnection(authDSN)
	if err != nil {
		log.Fatalf("Auth database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	tokenCfg := service.TokenConfigFromEnv()

	// Set up WebSocket hub for walk change events
	hub := realtime.NewHub()
	go hub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	regionRepo := newRegionRepository(walksDB)
	walkRepo := repository.NewWalkRepository(walksDB)
	difficultyRepo := repository.NewDifficultyRepository(walksDB)
	userStore := repository.NewUserStore(authDB)

	regionService := service.NewRegionService(regionRepo)
	walkService := service.NewWalkService(walkRepo, hub)
	difficultyService := service.NewDifficultyService(difficultyRepo)
	statisticsService := service.NewStatisticsService(walksDB)
	authService := service.NewAuthService(userStore, service.NewTokenIssuer(tokenCfg), minPasswordLength())

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService)
	regionHandler := handler.NewRegionHandler(regionService, tokenCfg)
	walkHandler := handler.NewWalkHandler(walkService, tokenCfg)
	difficultyHandler := handler.NewDifficultyHandler(difficultyService, tokenCfg)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService, tokenCfg)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint streaming walk change events
	router.GET("/ws", func(c *gin.Context) {
		realtime.ServeWs(hub, c, tokenCfg)
	})

	// API Routing
	authHandler.RegisterRoutes(router.Group(""))
	regionHandler.RegisterRoutes(router.Group(""))
	walkHandler.RegisterRoutes(router.Group(""))
	difficultyHandler.RegisterRoutes(router.Group(""))
	statisticsHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// newRegionRepository selects the region store backend once at startup
func newRegionRepository(db *gorm.DB) repository.RegionRepository {
	if os.Getenv("REGION_STORE") == "memory" {
		log.Println("Using in-memory region store")
		return repository.NewInMemoryRegionRepository()
	}
	return repository.NewRegionRepository(db)
}

func minPasswordLength() int {
	if n, err := strconv.Atoi(os.Getenv("MIN_PASSWORD_LENGTH")); err == nil && n > 0 {
		return n
	}
	return 6
}

func buildDSN(prefix string) string {
	host := envOr(prefix+"_HOST", "localhost")
	port := envOr(prefix+"_PORT", "5432")
	user := envOr(prefix+"_USER", "postgres")
	password := envOr(prefix+"_PASSWORD", "postgres")
	name := envOr(prefix+"_NAME", "walks")
	sslMode := envOr(prefix+"_SSLMODE", "disable")

	return "postgres://" + user + ":" + password + "@" + host + ":" + port + "/" + name + "?sslmode=" + sslMode
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
