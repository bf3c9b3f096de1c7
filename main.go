// File: bizbuddy/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizbuddy/config"
	"bizbuddy/cron"
	"bizbuddy/database"
	ledgerRepo "bizbuddy/database/repository/ledger"
	sessionRepo "bizbuddy/database/repository/session"
	"bizbuddy/handlers"
	"bizbuddy/middleware"
	"bizbuddy/routes"
	"bizbuddy/services/conversation"
	"bizbuddy/services/intent"
	"bizbuddy/services/tasks"
	"bizbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()
	config.LoadBusinessConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Stores.
	sessions := newSessionStore()
	ledger := newLedger()

	// Intent classifier: Gemini when a key is configured, keyword matching
	// otherwise.
	var classifier intent.Classifier
	if config.AppConfig.GeminiAPIKey != "" {
		classifier = intent.NewGeminiClassifier(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	} else {
		logger.Sugar().Warn("main: no Gemini API key configured, falling back to keyword intent matching")
		classifier = intent.NewKeywordClassifier(config.Business.ServiceNames())
	}

	// Appointment reminders.
	var reminders *tasks.ReminderScheduler
	if config.AppConfig.ReminderLeadMinutes > 0 {
		reminders = tasks.NewReminderScheduler(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}, time.Duration(config.AppConfig.ReminderLeadMinutes)*time.Minute)
		cron.InitReminderWorker(cron.LogNotifier{})
	}

	engine := &conversation.Engine{
		Business:   &config.Business,
		Sessions:   sessions,
		Ledger:     ledger,
		Classifier: classifier,
		Reminders:  reminders,
	}

	var transcriber *handlers.Transcriber
	if config.AppConfig.GoogleServiceAccountFile != "" {
		transcriber = handlers.NewTranscriber("")
	}

	webhookHandler := handlers.NewWebhookHandler(engine, transcriber)
	operatorHandler := handlers.NewOperatorHandler(ledger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		InboundMessageHandler:      webhookHandler.HandleInbound,
		GetCustomerBookingsHandler: operatorHandler.GetCustomerBookings,
		GetRecentCallbacksHandler:  operatorHandler.GetRecentCallbacks,
		GetRecentDeliveriesHandler: operatorHandler.GetRecentDeliveries,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	startHealthMonitor()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// newSessionStore builds the session store for the configured backend.
func newSessionStore() sessionRepo.Store {
	logger := utils.GetLogger()
	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute

	switch config.AppConfig.SessionBackend {
	case "redis":
		return sessionRepo.NewRedisSessionStore(utils.GetSessionCacheClient(), ttl)
	case "firestore":
		if utils.FirestoreClient == nil {
			utils.FirebaseInit()
		}
		return sessionRepo.NewFirestoreSessionStore(utils.FirestoreClient)
	case "mongo":
		if database.MongoClient == nil {
			database.InitDB()
		}
		return sessionRepo.NewMongoSessionStore()
	case "memory":
		return sessionRepo.NewMemorySessionStore()
	default:
		logger.Sugar().Fatalf("main: unknown session backend %q", config.AppConfig.SessionBackend)
		return nil
	}
}

// newLedger builds the booking ledger for the configured backend.
func newLedger() ledgerRepo.Ledger {
	logger := utils.GetLogger()

	switch config.AppConfig.LedgerBackend {
	case "mongo":
		if database.MongoClient == nil {
			database.InitDB()
		}
		return ledgerRepo.NewMongoLedger()
	case "firestore":
		if utils.FirestoreClient == nil {
			utils.FirebaseInit()
		}
		return ledgerRepo.NewFirestoreLedger(utils.FirestoreClient)
	case "memory":
		return ledgerRepo.NewMemoryLedger()
	default:
		logger.Sugar().Fatalf("main: unknown ledger backend %q", config.AppConfig.LedgerBackend)
		return nil
	}
}

// startHealthMonitor watches whichever external stores were initialized.
func startHealthMonitor() {
	var redisClients []*redis.Client
	if utils.SessionCacheClient != nil {
		redisClients = append(redisClients, utils.SessionCacheClient)
	}
	var mongoClient *mongo.Client = database.MongoClient
	if len(redisClients) > 0 || mongoClient != nil {
		utils.StartHealthMonitor(redisClients, mongoClient)
	}
}
