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

type categoryRequest struct {
	Name string `json:"name"`
}

// ListCategories returns the user's categories ordered by name.
func ListCategories(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := database.ListCategories(c.Request.Context(), pool, middleware.UserID(c))
		if err != nil {
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategory adds a custom category, rejecting case-insensitive
// duplicates per user.
func CreateCategory(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide a category name")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			abortMsg(c, http.StatusBadRequest, "Please provide a category name")
			return
		}

		category := &models.Category{UserID: middleware.UserID(c), Name: req.Name}
		if err := database.CreateCategory(c.Request.Context(), pool, category); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				abortMsg(c, http.StatusBadRequest, "Category already exists")
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategory renames one of the user's categories.
func UpdateCategory(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}

		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide a new name")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			abortMsg(c, http.StatusBadRequest, "Please provide a new name")
			return
		}

		category, err := database.UpdateCategory(c.Request.Context(), pool, middleware.UserID(c), id, req.Name)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusNotFound, "Category not found or user not authorized")
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes one of the user's categories.
func DeleteCategory(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		err := database.DeleteCategory(c.Request.Context(), pool, middleware.UserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusNotFound, "Category not found or user not authorized")
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Category deleted successfully"})
	}
}
