package main

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/config"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/db"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/routes"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	database, err := db.Open(cfg.DbDsn)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	dataStore := store.New(database)
	if err := bootstrapAdmin(dataStore, cfg); err != nil {
		log.Fatalf("admin bootstrap: %v", err)
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	routes.Register(r, dataStore, cfg)

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// bootstrapAdmin seeds the initial main admin account from the
// environment. A no-op when the id is unset or already registered.
func bootstrapAdmin(s *store.Store, cfg config.Config) error {
	if cfg.AdminNationalID == "" {
		return nil
	}

	_, err := s.FindByNationalID(cfg.AdminNationalID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	admin := models.User{
		NationalID: cfg.AdminNationalID,
		Name:       "System Administrator",
		Role:       models.RoleMainAdmin,
	}
	if err := s.CreateUser(&admin, cfg.AdminPassword); err != nil {
		return err
	}
	log.Printf("created initial admin account %s", cfg.AdminNationalID)
	return nil
}
