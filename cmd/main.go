package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Aslam-01/Food-Managment/internal/auth"
	"github.com/Aslam-01/Food-Managment/internal/config"
	"github.com/Aslam-01/Food-Managment/internal/controllers"
	"github.com/Aslam-01/Food-Managment/internal/database"
	"github.com/Aslam-01/Food-Managment/internal/middleware"
	"github.com/Aslam-01/Food-Managment/internal/models"
	"github.com/Aslam-01/Food-Managment/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	db                 *gorm.DB
	issuer             *auth.Issuer
	authController     *controllers.AuthController
	productController  *controllers.ProductController
	favoriteController *controllers.FavoriteController
	offerController    *controllers.OfferController
	configuration      *config.Config
)

func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	db = setupDatabase(configuration)

	// Initialize token issuer, services and controllers
	issuer = auth.NewIssuer(configuration.JWTSecret, configuration.AccessTokenTTL, configuration.RefreshTokenTTL)

	userService := services.NewUserService(db)
	productService := services.NewProductService(db)
	favoriteService := services.NewFavoriteService(db, productService)
	offerService := services.NewOfferService(db)

	authController = controllers.NewAuthController(userService, issuer)
	productController = controllers.NewProductController(productService)
	favoriteController = controllers.NewFavoriteController(favoriteService)
	offerController = controllers.NewOfferController(offerService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects to the configured database and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	conn, err := database.Connect(database.Config{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	err = conn.AutoMigrate(&models.User{}, &models.FoodProduct{}, &models.Customization{})
	checkPanicErr(err)

	// Seed a small catalog in development when the table is empty
	if config.GetEnvWithDefault("APP_ENV", "development") == "development" {
		var count int64
		conn.Model(&models.FoodProduct{}).Count(&count)
		if count == 0 {
			log.Info("Database is empty, seeding initial data")
			seedDatabase(conn)
		} else {
			log.Info("Database already seeded with initial data")
		}
	}
	return conn
}

// seedDatabase seeds the database with initial data
func seedDatabase(conn *gorm.DB) {
	products := []models.FoodProduct{
		{
			Name:          "Margherita Pizza",
			Description:   "Classic tomato, mozzarella and basil",
			Price:         decimal.NewFromFloat(10.99),
			AverageRating: 4.5,
			Category:      "Pizza",
			ProductType:   models.ProductTypeVeg,
			Customizations: []models.Customization{
				{Name: "Extra Cheese", Group: "Toppings", Toppings: "Mozzarella,Cheddar"},
			},
		},
		{
			Name:          "Chicken Burger",
			Description:   "Grilled chicken breast with lettuce",
			Price:         decimal.NewFromFloat(8.50),
			AverageRating: 4.2,
			Category:      "Burger",
			ProductType:   models.ProductTypeNonVeg,
			Customizations: []models.Customization{
				{Name: "Sauces", Group: "Fillings", Toppings: "Mayo,Ketchup,Bbq"},
			},
		},
		{
			Name:          "Veggie Wrap",
			Description:   "Fresh vegetables in a tortilla wrap",
			Price:         decimal.NewFromFloat(6.25),
			AverageRating: 3.9,
			Category:      "Wrap",
			ProductType:   models.ProductTypeVeg,
		},
	}
	for _, product := range products {
		conn.Create(&product)
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()
	setupRoutes(router)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Account endpoints
	router.POST("/sign-up/", authController.Signup)
	router.POST("/sign-in/", authController.Login)

	// Catalog endpoints. Reads are public; create and delete are
	// admin-only. Update historically only requires authentication;
	// ADMIN_ONLY_UPDATES tightens it to admin (see config.Config).
	router.GET("/products/", productController.List)
	router.GET("/products/:id", productController.Get)
	router.POST("/products/", middleware.JWTAuth(issuer), middleware.RequireAdmin(), productController.Create)
	router.DELETE("/products/:id", middleware.JWTAuth(issuer), middleware.RequireAdmin(), productController.Delete)

	updates := router.Group("/", middleware.JWTAuth(issuer))
	if configuration.AdminOnlyUpdates {
		updates.Use(middleware.RequireAdmin())
	}
	updates.PUT("/products/:id", productController.Update)
	updates.PATCH("/products/:id", productController.PartialUpdate)

	// Favourites and offers require authentication
	router.POST("/add-to-fvrt/:id", middleware.JWTAuth(issuer), favoriteController.Add)
	router.GET("/get-fvrt/", middleware.JWTAuth(issuer), favoriteController.List)
	router.GET("/get-offers/", middleware.JWTAuth(issuer), offerController.Get)
}

// healthCheckHandler handles the health check endpoint
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "food-managment-api",
	})
}
