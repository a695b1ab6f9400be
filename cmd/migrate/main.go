package main

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	db, err := sql.Open("postgres", cfg.ConnString()+"?sslmode=disable")
	if err != nil {
		logrus.WithError(err).Fatal("open database")
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("create migrate driver")
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("create migrator")
	}

	before, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		before = 0
	} else if err != nil {
		logrus.WithError(err).Fatal("read schema version")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logrus.WithError(err).Fatal("apply migrations")
	}

	after, _, err := m.Version()
	if err != nil {
		logrus.WithError(err).Fatal("read schema version")
	}

	logrus.WithFields(logrus.Fields{
		"before": before,
		"after":  after,
	}).Info("migration status")
}
