// Command seed provisions the initial branches and the admin account. Safe to
// run repeatedly; existing records are left alone.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/evobikemx/pos-backend/internal/config"
	"github.com/evobikemx/pos-backend/internal/database"
	"github.com/evobikemx/pos-backend/internal/dto"
	"github.com/evobikemx/pos-backend/internal/logging"
	"github.com/evobikemx/pos-backend/internal/models"
	"github.com/evobikemx/pos-backend/internal/services"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	branches := services.NewBranchService(db)
	auth := services.NewAuthService(db)

	seedBranch(branches, "LEO", "Leona Vicario")
	seedBranch(branches, "AV135", "Av. 135")

	var leona models.Branch
	if err := db.Where("code = ?", "LEO").First(&leona).Error; err != nil {
		slog.Error("seed branch lookup failed", "code", "LEO", "error", err)
		os.Exit(1)
	}

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	_, err = auth.CreateUser(&dto.CreateUserRequest{
		Name:     "Admin EVOBIKE",
		Email:    "admin@evobike.mx",
		Password: adminPassword,
		BranchID: &leona.ID,
		Admin:    true,
	})
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		slog.Info("admin user already present")
	case err != nil:
		slog.Error("admin user seed failed", "error", err)
		os.Exit(1)
	default:
		slog.Info("admin user created", "email", "admin@evobike.mx")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	slog.Info("seed complete")
}

func seedBranch(branches *services.BranchService, code, name string) {
	_, err := branches.Create(code, name)
	switch {
	case errors.Is(err, services.ErrBranchCodeTaken):
		slog.Info("branch already present", "code", code)
	case err != nil:
		slog.Error("branch seed failed", "code", code, "error", err)
		os.Exit(1)
	default:
		slog.Info("branch created", "code", code, "name", name)
	}
}
