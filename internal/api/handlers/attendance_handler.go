// server/internal/api/handlers/attendance_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"hadirkoe-api-server/internal/models"
	"hadirkoe-api-server/internal/socket"
	"hadirkoe-api-server/internal/syncer"

	"github.com/gin-gonic/gin"
)

// AttendanceStore is the persistence dependency of the submission
// endpoint. The mongo-backed implementation lives in internal/storage.
type AttendanceStore interface {
	Insert(ctx context.Context, record models.Attendance) (models.Attendance, error)
}

type AttendanceHandler struct {
	Store     AttendanceStore
	Forwarder syncer.Forwarder // nil when syncing is disabled
	Hub       *socket.Hub
}

type SubmitAttendanceRequest struct {
	APKVersion    string `json:"apkVersion"`
	EmployeeID    string `json:"employeeId"`
	PresenceType  string `json:"presenceType"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
	WorkType      string `json:"workType"`
	Information   string `json:"information"`
	PhotoEvidence string `json:"photoEvidence"`
	// PhotoBase64 is forwarded to the external sync endpoint, never persisted.
	PhotoBase64 string `json:"photoBase64"`
}

// Submit persists a new attendance record. On success the record is
// broadcast to the live feed and forwarded to the external sync
// endpoint; neither can fail the response.
func (h *AttendanceHandler) Submit(c *gin.Context) {
	var req SubmitAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.EmployeeID == "" || req.Latitude == "" || req.Longitude == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	record := models.Attendance{
		APKVersion:    req.APKVersion,
		EmployeeID:    req.EmployeeID,
		PresenceType:  req.PresenceType,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		WorkType:      req.WorkType,
		Information:   req.Information,
		PhotoEvidence: req.PhotoEvidence,
	}

	created, err := h.Store.Insert(c.Request.Context(), record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})

	if h.Hub != nil {
		notification := map[string]interface{}{
			"event": "attendance_submitted",
			"data":  created,
		}
		notificationJSON, _ := json.Marshal(notification)
		h.Hub.Broadcast(notificationJSON)
	}

	syncer.Forward(h.Forwarder, syncer.BuildPayload(created, req.PhotoBase64))
}
