// server/internal/database/seeder.go
package database

import (
	"context"
	"log"
	"time"

	"hadirkoe-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedDefaultConfig inserts a default form-options document when none
// exists yet, so a fresh deployment can render the form immediately.
// The passkey document is never seeded; it is administered out of band.
func SeedDefaultConfig(db *mongo.Database) error {
	collection := db.Collection("configs")

	count, err := collection.CountDocuments(context.Background(), bson.M{"kind": models.ConfigKindForm})
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Form config already exists. Seeding skipped.")
		return nil
	}

	log.Println("Form config not found. Seeding defaults...")
	now := time.Now()
	defaultConfig := models.Config{
		Kind: models.ConfigKindForm,
		APKVersion: []models.ConfigOption{
			{Value: "1.0.0", Name: "1.0.0"},
		},
		PresenceType: []models.ConfigOption{
			{Value: "CI", Name: "Check In"},
			{Value: "CO", Name: "Check Out"},
		},
		WorkType: []models.ConfigOption{
			{Value: "wfo", Name: "WFO"},
			{Value: "wfh", Name: "WFH"},
			{Value: "field", Name: "Field"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = collection.InsertOne(context.Background(), defaultConfig)
	if err != nil {
		return err
	}

	log.Println("Default form config seeded successfully.")
	return nil
}
