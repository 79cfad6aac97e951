package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"hrm-backend/internal/config"
	"hrm-backend/internal/models"
	"hrm-backend/internal/storage"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and runs migrations. TranslateError is on so
// unique-index violations come back as gorm.ErrDuplicatedKey.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Department{},
		&models.User{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	log.Println("Database connected. Migration complete.")
	return db, nil
}

// SeedSuperuser creates the configured superuser account if it does not
// exist yet. The email is normalized the same way the auth flows normalize
// it, so the seeded row is reachable at login however SUPER_EMAIL is cased.
// Safe to run on every boot.
func SeedSuperuser(ctx context.Context, cfg *config.Config, store storage.UserStore) error {
	email := strings.ToLower(strings.TrimSpace(cfg.SuperEmail))
	if email == "" || cfg.SuperPassword == "" {
		return nil
	}

	if _, err := store.FindUserByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("check superuser: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash superuser password: %w", err)
	}

	super := models.User{
		Name:         "Super User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleSuperuser,
	}
	if _, err := store.CreateUser(ctx, super); err != nil {
		return fmt.Errorf("seed superuser: %w", err)
	}

	log.Println("Superuser account seeded:", email)
	return nil
}
