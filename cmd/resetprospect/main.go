// Служебная утилита: возвращает заявку в статус pending.
// Нужна, когда заявку одобрили или отклонили по ошибке - штатного
// API-пути назад из терминальных статусов нет.
//
// Использование:
//
//	go run ./cmd/resetprospect <prospect-id>
package main

import (
	"fmt"
	"os"

	"trustfluence_backend/internal/config"
	"trustfluence_backend/internal/logger"
	"trustfluence_backend/internal/repositories"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: resetprospect <prospect-id>")
		os.Exit(2)
	}
	prospectID := os.Args[1]

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	prospectRepo := repositories.NewProspectRepository()

	prospect, err := prospectRepo.FindByID(db, prospectID)
	if err != nil {
		logger.Fatal("Prospect not found", "prospect_id", prospectID, "error", err)
	}

	if err := prospectRepo.ResetToPending(db, prospectID); err != nil {
		logger.Fatal("Failed to reset prospect", "prospect_id", prospectID, "error", err)
	}

	logger.Info("Prospect reset to pending",
		"prospect_id", prospectID,
		"email", prospect.Email,
		"previous_status", string(prospect.Status),
	)
}
