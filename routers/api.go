package routers

import (
	"context"
	"database/sql"
	"log"
	"time"

	"camptrade/config"
	"camptrade/controllers"
	"camptrade/descriptions"
	"camptrade/middlewares"
	"camptrade/upstream"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"gopkg.in/gomail.v2"
)

func Route(cfg *config.Config) *gin.Engine {
	api := controllers.NewAPI()

	api.Db = newDB(cfg.DBConnectionString)
	api.Db.SetConnMaxLifetime(5 * time.Minute)

	api.Redis = redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
		DB:   0,
	})

	wireServices(api, cfg)

	router := gin.Default()
	setupRoutes(router, api)
	return router
}

// wireServices attaches the upstream clients that have credentials configured.
func wireServices(api *controllers.API, cfg *config.Config) {
	api.SessionKey = cfg.SessionKey
	api.Backend = upstream.NewBackend(cfg.BackendBaseURL)
	api.Payee = controllers.Payee{Address: cfg.UPIPayeeAddress, Name: cfg.UPIPayeeName}

	if cfg.MistralAPIKey != "" {
		api.Completer = upstream.NewMistral(cfg.MistralAPIKey, cfg.MistralBaseURL, cfg.MistralModel)
	} else {
		log.Println("MISTRAL_API_KEY not set, chat completions disabled")
	}

	gemini, err := upstream.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Println("gemini disabled, using templates and placeholders:", err)
	} else {
		api.Images = gemini
		api.Descriptions = descriptions.New(gemini)
	}

	if cfg.SMTP.Enabled() {
		api.Mailer = gomail.NewDialer(cfg.SMTP.Server, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		api.MailFrom = cfg.SMTP.From
	} else {
		log.Println("SMTP not configured, order mails disabled")
	}
}

func setupRoutes(router *gin.Engine, api *controllers.API) {
	router.Use(CORS())
	auth := middlewares.Auth(api.Redis)

	router.POST("/api/signup", api.Register)
	router.POST("/api/login", api.Authenticate)
	router.GET("/api/check-session", auth, api.CheckSession)
	router.GET("/api/refresh-session", auth, api.RefreshSession)
	router.GET("/api/logout", auth, api.Logout)
	router.GET("/api/me", auth, api.GetUser)

	product := router.Group("/api/products")
	{
		product.GET("", api.GetProducts)
		product.POST("", api.CreateProduct)
		// seller batch delete
		product.DELETE("", auth, api.DeleteProducts)
		product.GET("/export", auth, api.ExportProducts)
	}

	router.GET("/api/categories", api.GetCategories)
	router.GET("/api/price-prediction", api.GetPricePrediction)
	router.POST("/api/chat", api.Chat)

	router.GET("/api/product-image", api.GetProductImage)
	router.POST("/api/product-image", api.ComposeProductImage)
	router.GET("/api/generate-image", api.GenerateImage)
	router.POST("/api/generate-image", api.RequestImage)

	router.GET("/api/product-description", api.GetDescription)
	router.POST("/api/product-descriptions", api.BatchDescriptions)

	checkout := router.Group("/api")
	checkout.Use(auth)
	{
		checkout.POST("/checkout", api.Checkout)
		checkout.POST("/checkout/:orderId/confirm", api.ConfirmOrder)
		checkout.GET("/orders", api.GetOrders)
	}
}

// CORS Cross Origin Resource Sharing
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, "+
			"Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func newDB(connString string) *sql.DB {
	conn, err := sql.Open("postgres", connString)
	if err != nil {
		log.Fatalf("Cannot connect to db: %v", err)
	}

	err = conn.Ping()
	if err != nil {
		log.Fatal(err)
	}

	return conn
}
