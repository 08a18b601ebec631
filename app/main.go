package main

import (
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"contacts/config"
	"contacts/middleware"
	"contacts/services/contacts/delivery"
	"contacts/services/contacts/repository"
	"contacts/services/contacts/usecase"
)

var log *logrus.Logger
var wg sync.WaitGroup

const requestTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := config.NewFiberApp()
	app.Use(middleware.RequestLogger(log))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	personRepo := repository.NewPersonRepository(db)
	phoneRepo := repository.NewPhoneRepository(db)
	emailRepo := repository.NewEmailRepository(db)

	personUC := usecase.NewPersonUseCase(personRepo, requestTimeout)
	phoneUC := usecase.NewPhoneUseCase(phoneRepo, requestTimeout)
	emailUC := usecase.NewEmailUseCase(emailRepo, requestTimeout)

	delivery.NewPersonHandler(app, personUC)
	delivery.NewPhoneHandler(app, phoneUC)
	delivery.NewEmailHandler(app, emailUC)
	delivery.NewHealthHandler(app, db)
	delivery.RegisterNotFound(app)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
