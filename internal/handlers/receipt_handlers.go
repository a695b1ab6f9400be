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

type receiptRequest struct {
	Title           string          `json:"title"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	TransactionDate string          `json:"transaction_date"`
	FundID          *int            `json:"fund_id"`
}

// ListReceipts returns the user's receipts, newest first.
func ListReceipts(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		receipts, err := database.ListReceipts(c.Request.Context(), pool, middleware.UserID(c))
		if err != nil {
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, receipts)
	}
}

// CreateReceipt records a new transaction.
func CreateReceipt(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req receiptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide title, amount, and transaction_date")
			return
		}
		if req.Title == "" || req.Amount.IsZero() || req.TransactionDate == "" {
			abortMsg(c, http.StatusBadRequest, "Please provide title, amount, and transaction_date")
			return
		}
		txDate, err := parseDate(req.TransactionDate)
		if err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide title, amount, and transaction_date")
			return
		}

		receipt := &models.Receipt{
			UserID:          middleware.UserID(c),
			Title:           req.Title,
			Amount:          req.Amount,
			Category:        req.Category,
			TransactionDate: txDate,
			FundID:          req.FundID,
		}
		if err := database.CreateReceipt(c.Request.Context(), pool, receipt); err != nil {
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, receipt)
	}
}

// UpdateReceipt rewrites one of the user's receipts.
func UpdateReceipt(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}

		var req receiptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide title, amount, and transaction_date")
			return
		}
		if req.Title == "" || req.Amount.IsZero() || req.TransactionDate == "" {
			abortMsg(c, http.StatusBadRequest, "Please provide title, amount, and transaction_date")
			return
		}
		txDate, err := parseDate(req.TransactionDate)
		if err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide title, amount, and transaction_date")
			return
		}

		updated, err := database.UpdateReceipt(c.Request.Context(), pool, &models.Receipt{
			ID:              id,
			UserID:          middleware.UserID(c),
			Title:           req.Title,
			Amount:          req.Amount,
			Category:        req.Category,
			TransactionDate: txDate,
			FundID:          req.FundID,
		})
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusNotFound, "Receipt not found or user not authorized")
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteReceipt removes one of the user's receipts.
func DeleteReceipt(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		err := database.DeleteReceipt(c.Request.Context(), pool, middleware.UserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusNotFound, "Receipt not found or user not authorized")
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Receipt deleted successfully"})
	}
}
