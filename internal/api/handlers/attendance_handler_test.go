package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hadirkoe-api-server/internal/api/handlers"
	"hadirkoe-api-server/internal/models"
	"hadirkoe-api-server/internal/syncer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAttendanceStore struct {
	insertFn func(ctx context.Context, record models.Attendance) (models.Attendance, error)
	inserted []models.Attendance
}

func (f *fakeAttendanceStore) Insert(ctx context.Context, record models.Attendance) (models.Attendance, error) {
	f.inserted = append(f.inserted, record)
	return f.insertFn(ctx, record)
}

type fakeForwarder struct {
	sent chan syncer.Payload
	err  error
}

func (f *fakeForwarder) Send(ctx context.Context, payload syncer.Payload) error {
	f.sent <- payload
	return f.err
}

func postJSON(h gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h(c)
	return w
}

func TestSubmit_PersistsRecordAndForwards(t *testing.T) {
	store := &fakeAttendanceStore{
		insertFn: func(ctx context.Context, record models.Attendance) (models.Attendance, error) {
			record.ID = primitive.NewObjectID()
			record.CreatedAt = time.Now()
			return record, nil
		},
	}
	forwarder := &fakeForwarder{sent: make(chan syncer.Payload, 1)}
	h := &handlers.AttendanceHandler{Store: store, Forwarder: forwarder}

	w := postJSON(h.Submit, `{
		"employeeId": "EMP-1",
		"latitude": "-6.2",
		"longitude": "106.8",
		"presenceType": "Check In",
		"workType": "wfo",
		"information": "note"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    models.Attendance `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "EMP-1", resp.Data.EmployeeID)
	assert.Equal(t, "-6.2", resp.Data.Latitude)
	assert.Equal(t, "106.8", resp.Data.Longitude)
	assert.Equal(t, "Check In", resp.Data.PresenceType)
	assert.Equal(t, "wfo", resp.Data.WorkType)
	assert.Equal(t, "note", resp.Data.Information)
	assert.False(t, resp.Data.CreatedAt.IsZero())

	select {
	case payload := <-forwarder.sent:
		assert.Equal(t, "EMP-1", payload.EmployeeID)
		assert.InDelta(t, -6.2, payload.Latitude, 1e-9)
		assert.InDelta(t, 106.8, payload.Longitude, 1e-9)
		assert.Equal(t, "WFO", payload.WorkType)
	case <-time.After(time.Second):
		t.Fatal("forwarder was not invoked")
	}
}

func TestSubmit_MissingRequiredFields(t *testing.T) {
	bodies := []string{
		`{"latitude": "-6.2", "longitude": "106.8"}`,
		`{"employeeId": "EMP-1", "longitude": "106.8"}`,
		`{"employeeId": "EMP-1", "latitude": "-6.2"}`,
		`{"employeeId": "", "latitude": "-6.2", "longitude": "106.8"}`,
	}

	for _, body := range bodies {
		store := &fakeAttendanceStore{
			insertFn: func(ctx context.Context, record models.Attendance) (models.Attendance, error) {
				return record, nil
			},
		}
		h := &handlers.AttendanceHandler{Store: store}

		w := postJSON(h.Submit, body)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Empty(t, store.inserted, "no write may happen for body: %s", body)
	}
}

func TestSubmit_StorageErrorIs500(t *testing.T) {
	store := &fakeAttendanceStore{
		insertFn: func(ctx context.Context, record models.Attendance) (models.Attendance, error) {
			return models.Attendance{}, errors.New("connection reset")
		},
	}
	h := &handlers.AttendanceHandler{Store: store}

	w := postJSON(h.Submit, `{"employeeId": "EMP-1", "latitude": "-6.2", "longitude": "106.8"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection reset")
}

func TestSubmit_NoForwarderConfigured(t *testing.T) {
	store := &fakeAttendanceStore{
		insertFn: func(ctx context.Context, record models.Attendance) (models.Attendance, error) {
			record.ID = primitive.NewObjectID()
			record.CreatedAt = time.Now()
			return record, nil
		},
	}
	h := &handlers.AttendanceHandler{Store: store}

	w := postJSON(h.Submit, `{"employeeId": "EMP-1", "latitude": "-6.2", "longitude": "106.8"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubmit_RepeatSubmissionsAreDistinct(t *testing.T) {
	store := &fakeAttendanceStore{
		insertFn: func(ctx context.Context, record models.Attendance) (models.Attendance, error) {
			record.ID = primitive.NewObjectID()
			record.CreatedAt = time.Now()
			return record, nil
		},
	}
	h := &handlers.AttendanceHandler{Store: store}

	body := `{"employeeId": "EMP-1", "latitude": "-6.2", "longitude": "106.8"}`
	first := postJSON(h.Submit, body)
	second := postJSON(h.Submit, body)

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Len(t, store.inserted, 2)

	var r1, r2 struct {
		Data models.Attendance `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(first.Body.Bytes(), &r1))
	assert.NoError(t, json.Unmarshal(second.Body.Bytes(), &r2))
	assert.NotEqual(t, r1.Data.ID, r2.Data.ID)
}
