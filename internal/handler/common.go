package handler

import (
	"errors"
	"net/http"

	apperrors "go-gin-event-room/pkg/app_errors"
	"go-gin-event-room/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserIDHeader 呼叫者身分，body 未帶 created_by 時使用
const UserIDHeader = "X-User-ID"

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid path parameters",
		})
		return err
	}
	return nil
}

// resourceUri 單一資源路徑 /:uuid
type resourceUri struct {
	UUID string `uri:"uuid" binding:"required,uuid"`
}

func (u resourceUri) id() uuid.UUID {
	return uuid.MustParse(u.UUID)
}

// handleError 將 app_errors 對應到 HTTP 狀態碼
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var notFound *apperrors.NotFoundError
	var conflict *apperrors.ConflictError
	switch {
	case errors.As(err, &notFound):
		log.Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &conflict):
		log.Warn("Conflict")
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrConflict):
		log.Warn("Conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrInternalServerError.Error()})
	}
}
