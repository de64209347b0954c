// server/internal/models/attendance.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance is one check-in/check-out submission. Records are
// append-only: nothing in the system updates or deletes them.
// Latitude/longitude are kept as strings, exactly as the form sends them.
type Attendance struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	APKVersion    string             `bson:"apkVersion,omitempty" json:"apkVersion,omitempty"`
	EmployeeID    string             `bson:"employeeId" json:"employeeId"`
	PresenceType  string             `bson:"presenceType" json:"presenceType"` // e.g., "Check In", "Check Out"
	Latitude      string             `bson:"latitude" json:"latitude"`
	Longitude     string             `bson:"longitude" json:"longitude"`
	WorkType      string             `bson:"workType" json:"workType"` // e.g., "wfo", "wfh", "field"
	Information   string             `bson:"information,omitempty" json:"information,omitempty"`
	PhotoEvidence string             `bson:"photoEvidence,omitempty" json:"photoEvidence,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
