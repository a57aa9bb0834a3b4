package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/setlocale/internal/config"
	"github.com/example/setlocale/internal/database"
	"github.com/example/setlocale/internal/excel"
	"github.com/example/setlocale/internal/scheduler"
	"github.com/example/setlocale/internal/service"
	"github.com/example/setlocale/internal/web"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	wordRepo := database.NewWordRepository(db)
	userRepo := database.NewUserRepository(db)
	appRepo := database.NewAppRepository(db)

	wordService := service.NewWordService(wordRepo, cfg.PageSize)
	userService := service.NewUserService(userRepo, cfg.PageSize)
	appService := service.NewAppService(appRepo, cfg.PageSize)
	importer := excel.NewImporter(wordService)

	handler, err := web.NewHandler(wordService, userService, appService, importer)
	if err != nil {
		log.Fatalf("Failed to build handler: %v", err)
	}
	server := web.NewServer(cfg.HTTPAddr, handler)

	recount := scheduler.New(wordRepo, cfg.RecountHour)
	recount.Start()
	defer recount.Stop()

	// Shut down on interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Listening on %s", cfg.HTTPAddr)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped successfully")
}
