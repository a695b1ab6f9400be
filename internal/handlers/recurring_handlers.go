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

type recurringRequest struct {
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Frequency string          `json:"frequency"`
	StartDate string          `json:"start_date"`
}

func (r *recurringRequest) validate() bool {
	return r.Title != "" && !r.Amount.IsZero() && r.Category != "" &&
		r.Frequency != "" && r.StartDate != ""
}

// ListRules returns the user's recurring transaction rules.
func ListRules(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rules, err := database.ListRules(c.Request.Context(), pool, middleware.UserID(c))
		if err != nil {
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, rules)
	}
}

// CreateRule adds a recurring rule due first on its start date.
func CreateRule(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recurringRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide all required fields.")
			return
		}
		if !req.validate() {
			abortMsg(c, http.StatusBadRequest, "Please provide all required fields.")
			return
		}
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide all required fields.")
			return
		}

		rule := &models.RecurringRule{
			UserID:    middleware.UserID(c),
			Title:     req.Title,
			Amount:    req.Amount,
			Category:  req.Category,
			Frequency: req.Frequency,
			StartDate: startDate,
		}
		if err := database.CreateRule(c.Request.Context(), pool, rule); err != nil {
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, rule)
	}
}

// UpdateRule rewrites a rule's template fields, never its due date.
func UpdateRule(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}

		var req recurringRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide all required fields.")
			return
		}
		if !req.validate() {
			abortMsg(c, http.StatusBadRequest, "Please provide all required fields.")
			return
		}
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide all required fields.")
			return
		}

		updated, err := database.UpdateRule(c.Request.Context(), pool, &models.RecurringRule{
			ID:        id,
			UserID:    middleware.UserID(c),
			Title:     req.Title,
			Amount:    req.Amount,
			Category:  req.Category,
			Frequency: req.Frequency,
			StartDate: startDate,
		})
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusNotFound, "Rule not found or user not authorized")
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteRule removes one of the user's rules.
func DeleteRule(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		err := database.DeleteRule(c.Request.Context(), pool, middleware.UserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusNotFound, "Rule not found or user not authorized")
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Recurring transaction rule deleted"})
	}
}
