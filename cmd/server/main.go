package main

import (
	"fmt"

	"gasops/internal/config"
	"gasops/internal/database"
	"gasops/internal/server"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)
	database.SeedAdmin(database.DB, cfg.AdminUsername, cfg.AdminPassword)

	r, err := server.NewRouter(cfg)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.WithField("addr", addr).Info("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
