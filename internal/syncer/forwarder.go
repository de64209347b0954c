// server/internal/syncer/forwarder.go
package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hadirkoe-api-server/internal/models"
)

// Payload is the normalized record forwarded to the external attendance
// system: numeric coordinates, uppercased work-type code, and the photo
// as a base64 data URI when the client provided one, else the stored URL.
type Payload struct {
	APKVersion   string  `json:"apkVersion,omitempty"`
	EmployeeID   string  `json:"employeeId"`
	PresenceType string  `json:"presenceType"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	WorkType     string  `json:"workType"`
	Information  string  `json:"information,omitempty"`
	Photo        string  `json:"photo,omitempty"`
}

// BuildPayload normalizes a persisted record for forwarding.
// Unparseable coordinates become 0; the record itself already passed
// validation, so this only degrades the forwarded copy.
func BuildPayload(record models.Attendance, photoBase64 string) Payload {
	lat, _ := strconv.ParseFloat(record.Latitude, 64)
	lng, _ := strconv.ParseFloat(record.Longitude, 64)

	photo := record.PhotoEvidence
	if photoBase64 != "" {
		photo = photoBase64
	}

	return Payload{
		APKVersion:   record.APKVersion,
		EmployeeID:   record.EmployeeID,
		PresenceType: record.PresenceType,
		Latitude:     lat,
		Longitude:    lng,
		WorkType:     strings.ToUpper(record.WorkType),
		Information:  record.Information,
		Photo:        photo,
	}
}

// Forwarder sends a normalized payload to the external attendance-sync
// endpoint. Implementations must be safe for concurrent use.
type Forwarder interface {
	Send(ctx context.Context, payload Payload) error
}

// WebhookForwarder posts payloads as JSON to a webhook URL.
type WebhookForwarder struct {
	URL    string
	Client *http.Client
}

func NewWebhookForwarder(url string) *WebhookForwarder {
	return &WebhookForwarder{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *WebhookForwarder) Send(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal sync payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("sync request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sync endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// Forward runs the send on a detached goroutine. Failures are logged
// and swallowed: forwarding must never block or fail the submission
// that triggered it. A nil forwarder means syncing is disabled.
func Forward(forwarder Forwarder, payload Payload) {
	if forwarder == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := forwarder.Send(ctx, payload); err != nil {
			log.Printf("Attendance sync failed for employee %s: %v", payload.EmployeeID, err)
		}
	}()
}
