package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskhub/internal/middleware"
	"taskhub/internal/repository"
	"taskhub/internal/service"
)

// currentUserID извлекает ID аутентифицированного пользователя из контекста gin
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError переводит типизированные результаты сервисного слоя в HTTP-ответы (1:1)
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, repository.ErrLabelNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, service.ErrNotTaskOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the task owner may perform this action"})
	case errors.Is(err, service.ErrAlreadyParticipant):
		c.JSON(http.StatusConflict, gin.H{"error": "User already participates in this task"})
	case errors.Is(err, service.ErrNotAParticipant):
		c.JSON(http.StatusConflict, gin.H{"error": "User is not a participant of this task"})
	case errors.Is(err, service.ErrOwnerParticipant):
		c.JSON(http.StatusConflict, gin.H{"error": "Task owner cannot be added as a participant"})
	case errors.Is(err, repository.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, repository.ErrDuplicateLabelName):
		c.JSON(http.StatusConflict, gin.H{"error": "Label name already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
