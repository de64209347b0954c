// server/internal/storage/attendance_store.go
package storage

import (
	"context"
	"fmt"
	"time"

	"hadirkoe-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const queryTimeout = 10 * time.Second

// AttendanceStore persists attendance records. The collection is
// append-only: there is no update or delete path.
type AttendanceStore struct {
	DB *mongo.Database
}

// Insert stores a new attendance record with a server-assigned creation
// timestamp and returns it with its generated ID.
func (s *AttendanceStore) Insert(ctx context.Context, record models.Attendance) (models.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	record.ID = primitive.NilObjectID
	record.CreatedAt = time.Now()

	collection := s.DB.Collection("attendances")
	result, err := collection.InsertOne(ctx, record)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("failed to insert attendance: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}

	return record, nil
}
