package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/config"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/logging"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/routes"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/scheduler"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.Setup()

	cfg, err := config.FromEnv()
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}

	pool, err := database.Connect(context.Background(), cfg.ConnString())
	if err != nil {
		logger.WithError(err).Fatal("connect database")
	}
	defer pool.Close()

	sched := scheduler.New(pool, logger)
	if err := sched.Start(); err != nil {
		logger.WithError(err).Fatal("start scheduler")
	}
	defer sched.Stop()

	r := routes.SetupRouter(cfg, pool, logger)

	logger.WithField("port", cfg.Port).Info("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("run server")
	}
}
