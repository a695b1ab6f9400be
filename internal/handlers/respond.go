package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func abortMsg(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"msg": msg})
}

// serverError logs the cause and answers a generic 500. The detail never
// reaches the client.
func serverError(c *gin.Context, logger *logrus.Logger, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
}

// idParam parses the :id route parameter, answering 400 itself on garbage.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		abortMsg(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// parseDate accepts the date-only form the client sends, falling back to
// a full timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
