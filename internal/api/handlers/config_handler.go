// server/internal/api/handlers/config_handler.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"hadirkoe-api-server/internal/models"
	"hadirkoe-api-server/internal/storage"

	"github.com/gin-gonic/gin"
)

// ConfigStore reads kind-tagged configuration documents.
type ConfigStore interface {
	LatestByKind(ctx context.Context, kind string) (models.Config, error)
}

type ConfigHandler struct {
	Store ConfigStore
}

// GetConfig returns the latest form-options document so the client can
// render valid choices. Read-only; safe to call repeatedly.
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.Store.LatestByKind(c.Request.Context(), models.ConfigKindForm)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Configuration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cfg})
}
