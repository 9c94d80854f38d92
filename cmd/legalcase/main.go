package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ahmetberacelik/legalcase/internal/cache"
	"github.com/ahmetberacelik/legalcase/internal/config"
	"github.com/ahmetberacelik/legalcase/internal/console"
	"github.com/ahmetberacelik/legalcase/internal/database"
	"github.com/ahmetberacelik/legalcase/internal/repository"
	"github.com/ahmetberacelik/legalcase/internal/service"
	"github.com/ahmetberacelik/legalcase/pkg/logger"
)

func main() {
	var migrate bool
	flag.BoolVar(&migrate, "migrate", false, "Run database migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}

	if migrate {
		if err := database.RunMigrations(db); err != nil {
			log.Fatal("Failed to run migrations", "error", err)
		}
		log.Info("Database migrations completed successfully")
		return
	}

	if err := database.SeedDefaultAdmin(db, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail); err != nil {
		log.Fatal("Failed to seed default admin", "error", err)
	}

	users := repository.NewUserRepository(db)
	clients := repository.NewClientRepository(db)
	cases := repository.NewCaseRepository(db)
	hearings := repository.NewHearingRepository(db)
	documents := repository.NewDocumentRepository(db)

	caseCache := cache.NewCache(cfg.CacheSize, cfg.CacheTTL)

	authService := service.NewAuthService(users)
	caseService := service.NewCaseService(cases, clients, caseCache)
	clientService := service.NewClientService(clients)
	hearingService := service.NewHearingService(hearings, cases)
	documentService := service.NewDocumentService(documents, cases)

	ui := console.New(os.Stdin, os.Stdout, log,
		authService, caseService, clientService, hearingService, documentService)
	ui.Run()
}
