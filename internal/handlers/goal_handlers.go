package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/middleware"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

type goalRequest struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	TargetDate   string          `json:"target_date"`
}

type addSavingsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ListGoals returns the user's savings goals.
func ListGoals(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := database.ListGoals(c.Request.Context(), pool, middleware.UserID(c))
		if err != nil {
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}

// CreateGoal adds a savings goal with zero saved so far.
func CreateGoal(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req goalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide a name and target amount.")
			return
		}
		if req.Name == "" || !req.TargetAmount.IsPositive() {
			abortMsg(c, http.StatusBadRequest, "Please provide a name and target amount.")
			return
		}

		goal := &models.Goal{
			UserID:       middleware.UserID(c),
			Name:         req.Name,
			TargetAmount: req.TargetAmount,
		}
		if req.TargetDate != "" {
			targetDate, err := parseDate(req.TargetDate)
			if err != nil {
				abortMsg(c, http.StatusBadRequest, "Please provide a name and target amount.")
				return
			}
			goal.TargetDate = &targetDate
		}

		if err := database.CreateGoal(c.Request.Context(), pool, goal); err != nil {
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, goal)
	}
}

// AddSavings increments a goal's saved amount. Additive only; the total
// may pass the target.
func AddSavings(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}

		var req addSavingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide a valid positive amount to add.")
			return
		}
		if !req.Amount.IsPositive() {
			abortMsg(c, http.StatusBadRequest, "Please provide a valid positive amount to add.")
			return
		}

		goal, err := database.AddSavings(c.Request.Context(), pool, middleware.UserID(c), id, req.Amount)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusNotFound, "Goal not found or user not authorized.")
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}
