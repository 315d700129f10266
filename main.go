package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront-service/config"
	"storefront-service/controllers"
	"storefront-service/database"
	"storefront-service/errors"
	"storefront-service/kafka"
	"storefront-service/logger"
	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/routes"
	"storefront-service/sender"
	"storefront-service/services"
)

func main() {
	// .env is optional; system environment wins otherwise
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Notification log storage is optional; without it attempts are
	// only logged to stdout.
	var notificationRepo repository.NotificationRepository
	if os.Getenv("POSTGRES_USER") != "" {
		db, err := database.ConnectPostgres(&models.NotificationLog{})
		if err != nil {
			logger.Log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		notificationRepo = repository.NewNotificationRepository(db)
	} else {
		logger.Log.Warn("POSTGRES_USER not set, notification log disabled")
	}

	var emailSender sender.EmailSender
	if smtp, err := sender.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom); err != nil {
		logger.Log.Warn("Email sender disabled", zap.Error(err))
	} else {
		emailSender = smtp
	}

	var smsSender sender.SMSSender
	if cfg.OTPMode == services.OTPModeTwilio {
		twilio, err := sender.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
		if err != nil {
			logger.Log.Fatal("OTP_MODE=twilio but Twilio is not configured", zap.Error(err))
		}
		smsSender = twilio
	}

	notificationService := services.NewNotificationService(notificationRepo, emailSender, smsSender)

	var producer *kafka.Producer
	var events kafka.EventPublisher
	if cfg.KafkaBrokers != "" {
		producer = kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		events = producer
		defer producer.Close()
	}

	cartRepo := database.NewCartRepository(redisClient, cfg.CartTTL)
	checkoutRepo := database.NewCheckoutRepository(redisClient, cfg.AddressTTL)
	otpRepo := database.NewOTPRepository(redisClient, cfg.OTPTTL)

	orderClient := services.NewOrderClient(cfg.OrderAPIURL, cfg.OrderAPITimeout)
	checkoutService := services.NewCheckoutService(cartRepo, checkoutRepo, orderClient, notificationService, events)
	authService := services.NewAuthService(otpRepo, notificationService, cfg.JWTSecret, cfg.OTPMode, cfg.OTPTTL)

	var paymentClient services.PaymentClient
	if cfg.StripeSecretKey != "" {
		paymentClient = services.NewStripeService(cfg.StripeSecretKey)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(errors.ErrorMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	cartController := controllers.NewCartController(cartRepo)
	routes.Register(router, cfg, cartController, checkoutService, orderClient, authService, paymentClient, notificationRepo)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Storefront service is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("Shutdown error", zap.Error(err))
	}
	logger.Log.Info("Server shutdown complete")
}
