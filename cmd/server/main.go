package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spandan/config"
	"spandan/internal/database"
	"spandan/internal/repository"
	"spandan/internal/router"
	"spandan/internal/service"
	"spandan/internal/ws"
	"spandan/pkg/cloudinary"
)

func main() {
	cfg := config.Load()

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	database.SeedAdmin(db, &cfg.Seed)
	database.SeedSettings(db)

	// revocation rows only matter until the token would have expired anyway
	tokenRepo := repository.NewTokenRepository(db)
	if err := tokenRepo.PurgeExpired(); err != nil {
		log.Printf("purge revoked tokens: %v", err)
	}
	go func() {
		tick := time.NewTicker(time.Hour)
		for range tick.C {
			if err := tokenRepo.PurgeExpired(); err != nil {
				log.Printf("purge revoked tokens: %v", err)
			}
		}
	}()

	hub := ws.NewHub()
	recorder := service.NewRecorder(repository.NewAuditLogRepository(db), hub, cfg.Audit.BufferSize)

	var cloud cloudinary.Client
	if cfg.Cloudinary.CloudName != "" {
		cloud, err = cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			log.Printf("cloudinary disabled: %v", err)
		}
	}

	engine := router.Setup(cfg, db, hub, recorder, cloud)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	recorder.Close()
}
