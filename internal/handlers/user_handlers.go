package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/auth"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/middleware"
)

type changePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// ChangePassword rotates the authenticated user's password.
func ChangePassword(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req changePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, "Please provide all required fields.")
			return
		}
		if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmNewPassword == "" {
			abortMsg(c, http.StatusBadRequest, "Please provide all required fields.")
			return
		}
		if req.NewPassword != req.ConfirmNewPassword {
			abortMsg(c, http.StatusBadRequest, "New passwords do not match.")
			return
		}
		if len(req.NewPassword) < 6 {
			abortMsg(c, http.StatusBadRequest, "New password must be at least 6 characters long.")
			return
		}

		userID := middleware.UserID(c)
		user, err := database.GetUserByID(c.Request.Context(), pool, userID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortMsg(c, http.StatusNotFound, "User not found.")
				return
			}
			serverError(c, logger, err)
			return
		}
		if !auth.CheckPassword(user.HashedPw, req.CurrentPassword) {
			abortMsg(c, http.StatusUnauthorized, "Incorrect current password.")
			return
		}

		hashed, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			serverError(c, logger, err)
			return
		}
		if err := database.UpdateUserPassword(c.Request.Context(), pool, userID, hashed); err != nil {
			serverError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "Password updated successfully."})
	}
}
