package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/anamkhan-2/bzooo-webtechProject/cart"
	"github.com/anamkhan-2/bzooo-webtechProject/catalog"
	"github.com/anamkhan-2/bzooo-webtechProject/checkout"
	orderControllers "github.com/anamkhan-2/bzooo-webtechProject/controllers/order"
	"github.com/anamkhan-2/bzooo-webtechProject/middleware"
	"github.com/anamkhan-2/bzooo-webtechProject/models"
	"github.com/anamkhan-2/bzooo-webtechProject/routes"
	"github.com/anamkhan-2/bzooo-webtechProject/session"
	"github.com/anamkhan-2/bzooo-webtechProject/storage"
)

func main() {
	log.Println("✅ Starting zoo shop...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Ticket{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed demo tickets
	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedTickets(db); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	}

	// Collaborators
	sessions := initSessionStore()
	ticketCache := catalog.NewCache(catalog.NewStore(db), 30*time.Second)
	engine := cart.NewEngine(ticketCache)
	orders := storage.NewOrders(db)
	workflow := checkout.NewWorkflow(orders, sessions)
	workflow.OnOrderCreated(orderControllers.BroadcastNewOrder)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Every visitor gets a session cookie for their cart
	r.Use(middleware.EnsureSession())

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Engine:   engine,
		Workflow: workflow,
		Sessions: sessions,
		Orders:   orders,
		Cache:    ticketCache,
		Admin:    initAdminVerifier(),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// initSessionStore picks redis when configured, in-process memory
// otherwise. Either way carts are private to their session.
func initSessionStore() session.Store {
	seedDemo := os.Getenv("SEED_DEMO_CART") == "true"

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		log.Printf("✅ Session carts stored in redis at %s", addr)
		return session.NewRedisStore(client, seedDemo)
	}

	log.Println("⚠️ REDIS_ADDR not set, session carts stored in memory")
	return session.NewMemoryStore(seedDemo)
}

// initAdminVerifier prefers the JWT verifier when a secret is configured,
// falling back to the static admin API key.
func initAdminVerifier() checkout.CredentialVerifier {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return middleware.JWTVerifier{Secret: []byte(secret)}
	}
	return middleware.APIKeyVerifier{Key: os.Getenv("ADMIN_API_KEY")}
}
