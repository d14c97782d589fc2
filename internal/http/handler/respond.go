package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/service"
)

// respondError writes the uniform failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError maps service and repository errors onto the envelope.
// Validation problems surface field by field; store failures are logged and
// kept generic.
func respondServiceError(c *gin.Context, err error, fallback string) {
	var reqErr *service.RequestError
	if errors.As(err, &reqErr) {
		body := gin.H{"success": false, "message": reqErr.Message}
		if len(reqErr.Fields) > 0 {
			body["errors"] = reqErr.Fields
		}
		c.JSON(reqErr.Status, body)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, fallback+" not found")
		return
	}
	zap.L().Error("backend failure", zap.String("path", c.FullPath()), zap.Error(err))
	respondError(c, http.StatusInternalServerError, "internal error")
}
