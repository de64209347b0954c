// server/internal/api/handlers/passkey_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"hadirkoe-api-server/config"
	"hadirkoe-api-server/internal/auth"
	"hadirkoe-api-server/internal/models"
	"hadirkoe-api-server/internal/storage"

	"github.com/gin-gonic/gin"
)

type PassKeyHandler struct {
	Store ConfigStore
	Auth  config.AuthConfig
}

type ValidateKeyRequest struct {
	PassKey string `json:"passKey"`
}

// ValidateKey checks a submitted passkey against the stored one with
// exact string equality. Fail-closed: no configured passkey means the
// gate denies every request. No lockout or attempt counting; each call
// is independent.
func (h *PassKeyHandler) ValidateKey(c *gin.Context) {
	var req ValidateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.PassKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "PassKey is required"})
		return
	}

	cfg, err := h.Store.LatestByKind(c.Request.Context(), models.ConfigKindPassKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "PassKey configuration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if cfg.PassKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "PassKey configuration not found"})
		return
	}

	if req.PassKey != cfg.PassKey {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid PassKey"})
		return
	}

	resp := gin.H{"success": true, "message": "PassKey validated"}

	// Hand out a session token when a secret is configured, so
	// deployments running with auth.requireToken can protect the form
	// endpoints. Token minting failure does not fail the validation.
	if h.Auth.TokenSecret != "" {
		token, err := auth.GenerateSessionToken([]byte(h.Auth.TokenSecret), h.Auth.TokenTTL)
		if err != nil {
			log.Printf("Failed to generate session token: %v", err)
		} else {
			resp["token"] = token
		}
	}

	c.JSON(http.StatusOK, resp)
}
