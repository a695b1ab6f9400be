package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/auth"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/middleware"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user and returns a session token with the public
// user fields. The token is signed only after the user row has committed.
func Register(pool *pgxpool.Pool, jwtSecret string, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please enter all fields")
			return
		}

		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.TrimSpace(req.Email)
		if req.Username == "" || req.Email == "" || req.Password == "" {
			abortMsg(c, http.StatusBadRequest, "Please enter all fields")
			return
		}
		if len(req.Password) < 6 {
			abortMsg(c, http.StatusBadRequest, "Password must be at least 6 characters")
			return
		}

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			serverError(c, logger, err)
			return
		}

		user := &models.User{
			Username: req.Username,
			Email:    req.Email,
			HashedPw: hashed,
		}
		if err := database.CreateUser(c.Request.Context(), pool, user); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				abortMsg(c, http.StatusBadRequest, "User already exists")
				return
			}
			serverError(c, logger, err)
			return
		}

		token, err := auth.GenerateToken(jwtSecret, user.ID)
		if err != nil {
			serverError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
	}
}

// Login checks the credentials and issues a session token. The response
// never says which factor failed.
func Login(pool *pgxpool.Pool, jwtSecret string, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please enter all fields")
			return
		}
		if req.Email == "" || req.Password == "" {
			abortMsg(c, http.StatusBadRequest, "Please enter all fields")
			return
		}

		user, err := database.GetUserByEmail(c.Request.Context(), pool, req.Email)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			serverError(c, logger, err)
			return
		}
		if !auth.CheckPassword(user.HashedPw, req.Password) {
			abortMsg(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := auth.GenerateToken(jwtSecret, user.ID)
		if err != nil {
			serverError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// CurrentUser returns the authenticated user's profile.
func CurrentUser(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := database.GetUserByID(c.Request.Context(), pool, middleware.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusNotFound, "User not found")
				return
			}
			serverError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
