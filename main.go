// File: barberpro/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberpro/config"
	"barberpro/cron"
	"barberpro/database"
	appointmentRepo "barberpro/database/repository/appointment"
	"barberpro/handlers"
	"barberpro/middleware"
	"barberpro/models"
	"barberpro/routes"
	"barberpro/services/booking"
	"barberpro/services/calendar"
	"barberpro/services/notification"
	"barberpro/services/reminder"
	"barberpro/services/tasks"
	"barberpro/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

func main() {
	// No .env file is fine; config falls back to the process environment.
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()

	// The appointment store runs on MongoDB when DATABASE_URL is set and on
	// the in-memory store otherwise, so the widget works out of the box in
	// development.
	var apptRepo appointmentRepo.AppointmentRepository
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB()
		apptRepo = appointmentRepo.NewMongoAppointmentRepo()
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory appointment store")
		apptRepo = appointmentRepo.NewMemoryAppointmentRepo()
	}

	utils.InitSessionCache()

	shop := models.ShopInfo{
		Name:    config.AppConfig.ShopName,
		Phone:   config.AppConfig.ShopPhone,
		Address: config.AppConfig.ShopAddress,
		Email:   config.AppConfig.ShopEmail,
		Domain:  config.AppConfig.ShopDomain,
	}
	catalog := models.DefaultCatalog()

	// Deferred reminder jobs go through the Redis-backed queue so pending
	// reminders survive a process restart.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer queueClient.Close()

	notifier := &notification.DefaultNotifier{
		SMTPHost:        config.AppConfig.SMTPHost,
		SMTPPort:        config.AppConfig.SMTPPort,
		EmailUser:       config.AppConfig.EmailUser,
		EmailPass:       config.AppConfig.EmailPass,
		SMSWebhookURL:   config.AppConfig.SMSWebhookURL,
		SMSWebhookToken: config.AppConfig.SMSWebhookToken,
	}

	reminderService := &reminder.DefaultReminderService{
		Templates: reminder.NewTemplateEngine(shop),
		Enqueuer:  tasks.NewAsynqEnqueuer(queueClient),
		Notifier:  notifier,
	}

	wizardService := &booking.DefaultWizardService{
		Sessions:  booking.NewRedisSessionStore(utils.GetSessionCacheClient(), booking.SessionTTL),
		Repo:      apptRepo,
		Reminders: reminderService,
		Catalog:   catalog,
	}

	calendarBuilder := calendar.NewBuilder(shop)

	appointmentHandler := handlers.NewAppointmentHandler(apptRepo, logger)
	bookingHandler := handlers.NewBookingHandler(wizardService, calendarBuilder, catalog, logger)

	// Background workers.
	cron.InitReminderWorker(reminderService)
	cron.StartStaleBookingSweep(apptRepo)
	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient()}, database.MongoClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, appointmentHandler, bookingHandler)

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
