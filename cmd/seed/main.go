// Command seed fills the database with demo data for local development.
package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/auth"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/config"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

var demoCategories = []string{"Groceries", "Rent", "Transport", "Dining", "Entertainment", "Utilities"}

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.ConnString())
	if err != nil {
		logrus.WithError(err).Fatal("connect database")
	}
	defer pool.Close()

	hashed, err := auth.HashPassword("password123")
	if err != nil {
		logrus.WithError(err).Fatal("hash demo password")
	}

	for i := 0; i < 3; i++ {
		user := &models.User{
			Username: gofakeit.Username(),
			Email:    gofakeit.Email(),
			HashedPw: hashed,
		}
		if err := database.CreateUser(ctx, pool, user); err != nil {
			logrus.WithError(err).Fatal("seed user")
		}

		for _, name := range demoCategories {
			category := &models.Category{UserID: user.ID, Name: name}
			if err := database.CreateCategory(ctx, pool, category); err != nil {
				logrus.WithError(err).Fatal("seed category")
			}
		}

		for j := 0; j < 20; j++ {
			receipt := &models.Receipt{
				UserID:          user.ID,
				Title:           gofakeit.ProductName(),
				Amount:          decimal.NewFromFloat(gofakeit.Price(1, 200)),
				Category:        demoCategories[rand.Intn(len(demoCategories))],
				TransactionDate: gofakeit.DateRange(time.Now().AddDate(0, -2, 0), time.Now()),
			}
			if err := database.CreateReceipt(ctx, pool, receipt); err != nil {
				logrus.WithError(err).Fatal("seed receipt")
			}
		}

		rule := &models.RecurringRule{
			UserID:    user.ID,
			Title:     "Rent",
			Amount:    decimal.NewFromInt(1200),
			Category:  "Rent",
			Frequency: models.FrequencyMonthly,
			StartDate: time.Now().AddDate(0, 0, 1),
		}
		if err := database.CreateRule(ctx, pool, rule); err != nil {
			logrus.WithError(err).Fatal("seed recurring rule")
		}

		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"email":   user.Email,
		}).Info("seeded user")
	}
}
