package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/repository"
)

// respondError translates repository errors into status codes.
// Only unexpected failures are logged; not found and conflict are caller errors.
func (h *Handler) respondError(c *gin.Context, err error) {
	var unexpected *repository.UnexpectedError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	case errors.As(err, &unexpected):
		h.cfg.Logger.WithField("path", c.FullPath()).Errorf("repository: %s", unexpected.Detail)
		c.JSON(http.StatusInternalServerError, gin.H{"error": unexpected.Detail})
	default:
		h.cfg.Logger.WithField("path", c.FullPath()).WithError(err).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
