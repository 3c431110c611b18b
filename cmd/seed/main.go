package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/store"
)

// Seeds the data store with the owner account and the default settings and
// content documents. Safe to re-run: existing documents are left alone.
func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	st, err := newStore(cfg)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}

	userRepo := repository.NewUserRepository(st)
	if _, err := userRepo.FindByEmail(ctx, cfg.OwnerEmail); err == nil {
		log.Printf("Owner %s already exists", cfg.OwnerEmail)
	} else {
		owner := &model.User{
			ID:                    uuid.NewString(),
			Email:                 cfg.OwnerEmail,
			Role:                  auth.RoleOwner,
			PasswordSet:           false,
			RequirePasswordChange: true,
			CreatedAt:             time.Now(),
		}
		if err := userRepo.Create(ctx, owner); err != nil {
			log.Fatalf("create owner: %v", err)
		}
		log.Printf("Created owner %s", cfg.OwnerEmail)
	}

	// Get seeds the defaults when the document is absent.
	if _, err := repository.NewSettingsRepository(st).Get(ctx); err != nil {
		log.Fatalf("seed settings: %v", err)
	}
	if _, err := repository.NewContentRepository(st).Get(ctx); err != nil {
		log.Fatalf("seed content: %v", err)
	}

	log.Println("Seed completed")
}

func newStore(cfg *config.Config) (store.Store, error) {
	if cfg.StoreDriver == "sqlite" {
		return store.NewSQLiteStore(cfg.SQLitePath)
	}
	return store.NewFileStore(cfg.DataDir)
}
