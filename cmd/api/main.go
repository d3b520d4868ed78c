package main

import (
	"context"
	"log"

	"github.com/pc-part-finder/go-partfinder-backend/config"
	"github.com/pc-part-finder/go-partfinder-backend/internal/auth"
	"github.com/pc-part-finder/go-partfinder-backend/internal/bootstrap"
	"github.com/pc-part-finder/go-partfinder-backend/internal/catalog"
	cronjob "github.com/pc-part-finder/go-partfinder-backend/internal/catalog/cron"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	deps := bootstrap.RouterDeps{
		ServiceName: "partfinder-api",
		Version:     cfg.App.Version,
		Redis:       rdb,
	}

	// The users/orders database is optional: without it the service runs
	// ledger-only and the profile and order routes are not registered.
	if cfg.Database.DSN != "" {
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pool.Close()
		deps.DB = pool

		sqlDB, err := bootstrap.OpenSQLDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer sqlDB.Close()
		deps.SQLDB = sqlDB
	} else {
		log.Println("DB_DSN not set, running without profiles and order receipts")
	}

	if cfg.Firebase.CredentialsPath != "" {
		authClient, err := auth.InitializeFirebase(&cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
		deps.AuthClient = authClient
	} else {
		log.Println("Firebase not configured, using dev header identity")
	}

	cat := catalog.New()
	if cfg.Catalog.Path != "" {
		if err := cat.LoadFromFile(cfg.Catalog.Path); err != nil {
			log.Printf("catalog load failed, keeping built-in parts: %v", err)
		}
	}
	deps.Catalog = cat

	cronjob.NewScheduler(cat, cfg.Catalog.Path).Start()

	r := bootstrap.BuildRouter(deps)

	log.Printf("partfinder-api %s listening on :%s", cfg.App.Version, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
