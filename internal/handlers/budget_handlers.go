package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/middleware"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

type budgetRequest struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	FundID   *int            `json:"fund_id"`
}

// CreateBudget adds a monthly budget for a category. Only one budget may
// exist per (user, category, month, year).
func CreateBudget(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req budgetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide valid data for all fields.")
			return
		}
		if req.Category == "" || !req.Amount.IsPositive() ||
			req.Month < 1 || req.Month > 12 || req.Year == 0 {
			abortMsg(c, http.StatusBadRequest, "Please provide valid data for all fields.")
			return
		}

		budget := &models.Budget{
			UserID:   middleware.UserID(c),
			Category: req.Category,
			Amount:   req.Amount,
			Month:    req.Month,
			Year:     req.Year,
			FundID:   req.FundID,
		}
		if err := database.CreateBudget(c.Request.Context(), pool, budget); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				abortMsg(c, http.StatusBadRequest,
					fmt.Sprintf("A budget for '%s' already exists for this month.", req.Category))
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, budget)
	}
}

// ListBudgets returns the month's budgets with current spending computed
// per category.
func ListBudgets(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		month, errM := strconv.Atoi(c.Query("month"))
		year, errY := strconv.Atoi(c.Query("year"))
		if errM != nil || errY != nil || month < 1 || month > 12 || year == 0 {
			abortMsg(c, http.StatusBadRequest, "Valid month and year query parameters are required.")
			return
		}

		budgets, err := database.ListBudgetsWithSpending(c.Request.Context(), pool, middleware.UserID(c), month, year)
		if err != nil {
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, budgets)
	}
}

// DeleteBudget removes one of the user's budgets.
func DeleteBudget(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		err := database.DeleteBudget(c.Request.Context(), pool, middleware.UserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusNotFound, "Budget not found or user not authorized")
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Budget deleted successfully"})
	}
}
