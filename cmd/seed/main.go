package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	httpadapter "loginsvc/internal/adapters/http"
	"loginsvc/internal/adapters/security"
	"loginsvc/internal/config"
	"loginsvc/internal/domain"
	"loginsvc/internal/logger"
	"loginsvc/internal/storage"
)

type seedUser struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func main() {
	cfg := config.Load()

	input := seedUser{
		Email:    "admin@loginsvc.local",
		Password: "password",
	}
	if envEmail := os.Getenv("DB_ADMIN_EMAIL"); envEmail != "" {
		input.Email = envEmail
	}
	if envPass := os.Getenv("DB_ADMIN_PASSWORD"); envPass != "" {
		input.Password = envPass
	}

	flag.StringVar(&input.Email, "email", input.Email, "user email")
	flag.StringVar(&input.Password, "password", input.Password, "user password")
	flag.StringVar(&cfg.StoreDriver, "driver", cfg.StoreDriver, "store driver: postgres, sqlite, redis, mongo")
	flag.Parse()

	if errs := httpadapter.ValidateStruct(&input); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Println(msg)
		}
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, logger.New(cfg))
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	hashed, err := security.HashPassword(input.Password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &domain.User{Email: input.Email, Password: hashed}
	if err := store.Users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			fmt.Printf("User %s already exists, nothing to do.\n", input.Email)
			return
		}
		log.Fatalf("Failed to seed user: %v", err)
	}

	fmt.Printf("User seeded!\n   ID:   %s\n   User: %s\n", user.ID, user.Email)
}
