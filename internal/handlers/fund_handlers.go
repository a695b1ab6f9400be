package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/middleware"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

type fundRequest struct {
	Name   string `json:"name"`
	GoalID *int   `json:"goal_id"`
}

// CreateFund adds a fund, optionally linked to a goal.
func CreateFund(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req fundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide a name for the fund.")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			abortMsg(c, http.StatusBadRequest, "Please provide a name for the fund.")
			return
		}

		fund := &models.Fund{
			UserID: middleware.UserID(c),
			Name:   req.Name,
			GoalID: req.GoalID,
		}
		if err := database.CreateFund(c.Request.Context(), pool, fund); err != nil {
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, fund)
	}
}

// ListFunds returns the user's funds with linked goal amounts.
func ListFunds(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		funds, err := database.ListFunds(c.Request.Context(), pool, middleware.UserID(c))
		if err != nil {
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, funds)
	}
}

// GetFund returns one fund with its budgets and transactions.
func GetFund(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		detail, err := database.GetFundDetail(c.Request.Context(), pool, middleware.UserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusNotFound, "Fund not found.")
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}
