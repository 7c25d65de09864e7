package main

import (
	"context"
	"embed"
	"time"

	"arenadash/internal/application"
	"arenadash/internal/arena"
	"arenadash/internal/delivery/discord"
	"arenadash/internal/delivery/httpapi"
	"arenadash/internal/repository"
	"arenadash/pkg/config"
	"arenadash/pkg/logger"
	service "arenadash/pkg/services"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func main() {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.ReadEnvConfig(&cfg); err != nil {
		panic(err)
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel})

	policy, err := application.ParseIndexPolicy(cfg.IndexPolicy)
	if err != nil {
		log.Error("bad config", "error", err.Error())
		return
	}

	db, err := repository.NewPostgresDB(&cfg.Repo)
	if err != nil {
		log.Error("failed to init db", "error", err.Error())
		return
	}
	defer db.Close()

	log.Info("running migrations")
	if err := repository.RunMigrations(db, migrationFS); err != nil {
		log.Error("failed to run migrations", "error", err.Error())
		return
	}

	repos := repository.NewRepository(db)
	client := arena.NewClient(cfg.ArenaBaseURL, cfg.ArenaAPIKey)

	services := application.NewService(repos, client, application.Options{
		TeamID:           cfg.TeamID,
		OurBranches:      cfg.OurBranches,
		OpponentCount:    cfg.OpponentCount,
		SubmissionWindow: cfg.SubmissionWindow,
		Policy:           policy,
	}, log)

	manager := service.NewManager(log)
	manager.AddService(httpapi.NewServer(&cfg, services, log))

	if cfg.DiscordToken != "" {
		manager.AddService(discord.NewBot(&cfg, services, log))
	}
	if cfg.AutoRun {
		interval := time.Duration(cfg.SyncIntervalSeconds) * time.Second
		manager.AddService(application.NewAutoRunScheduler(services.Dashboard, interval, log))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Run(ctx); err != nil {
		log.Error("service manager stopped", "error", err.Error())
		return
	}
	log.Info("stopped")
}
