package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitcoach/coach-app/internal/api"
	"fitcoach/coach-app/internal/config"
	"fitcoach/coach-app/internal/repository/mongo"
	"fitcoach/coach-app/internal/service"
	"fitcoach/coach-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.Info("starting coach app server")

	// --- Database ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logrus.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logrus.WithField("database", cfg.Database.Name).Info("database connection established")

	// Index creation runs in the background so startup is not blocked by a
	// slow or cold database.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureCoachIndexes(ctx, appDB.Collection("coaches"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureProgramIndexes(ctx, appDB.Collection("programs"))
		mongo.EnsureClientIndexes(ctx, appDB.Collection("clients"))
		mongo.EnsureAssignmentIndexes(ctx, appDB.Collection("assignments"))
		mongo.EnsureSessionLogIndexes(ctx, appDB.Collection("session_logs"))
		mongo.EnsureMeasurementIndexes(ctx, appDB.Collection("measurements"))
		logrus.Debug("index creation completed")
	}()

	// --- File storage (optional) ---
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			logrus.WithError(err).Fatal("failed to initialize S3 storage")
		}
	} else {
		logrus.Info("no S3 bucket configured, exercise image uploads disabled")
	}

	// --- Repositories ---
	coachRepo := mongo.NewMongoCoachRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	clientRepo := mongo.NewMongoClientRepository(appDB)
	assignmentRepo := mongo.NewMongoAssignmentRepository(appDB)
	sessionRepo := mongo.NewMongoSessionLogRepository(appDB)
	measurementRepo := mongo.NewMongoMeasurementRepository(appDB)

	// --- Services ---
	authService := service.NewAuthService(coachRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	catalogService := service.NewCatalogService(exerciseRepo, fileStorage)
	programService := service.NewProgramService(programRepo)
	clientService := service.NewClientService(clientRepo, assignmentRepo, sessionRepo, measurementRepo)
	assignmentService := service.NewAssignmentService(programRepo, exerciseRepo, assignmentRepo, sessionRepo)
	sessionService := service.NewSessionService(assignmentRepo, sessionRepo)
	progressService := service.NewProgressService(exerciseRepo, assignmentRepo, sessionRepo, clientRepo, measurementRepo)

	// First boot gets the default catalog.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := catalogService.SeedDefaults(seedCtx); err != nil {
		logrus.WithError(err).Warn("failed to seed default exercises")
	}
	seedCancel()

	// --- Router ---
	router := gin.Default()
	api.SetupRoutes(router, cfg.JWT.Secret,
		authService, catalogService, programService, clientService,
		assignmentService, sessionService, progressService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.WithField("address", cfg.Server.Address).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("listen and serve error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("server exited")
}
