package controllers

import (
	"errors"
	"net/http"

	"resto-admin/models"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto the response envelope: validation
// failures are 400, missing records 404, store failures 500.
func writeError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": vErr.Message, "field": vErr.Field})
		return
	}

	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Record not found"})
		return
	}

	var pErr *models.PersistenceError
	if errors.As(err, &pErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Operation failed", "error": pErr.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Operation failed", "error": err.Error()})
}
