// server/internal/storage/config_store.go
package storage

import (
	"context"
	"errors"
	"fmt"

	"hadirkoe-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no configuration document of the
// requested kind exists.
var ErrNotFound = errors.New("configuration not found")

// ConfigStore reads kind-tagged configuration documents. Writes happen
// out of band (administrative), so the store is read-only.
type ConfigStore struct {
	DB *mongo.Database
}

// LatestByKind returns the most recently updated config document of the
// given kind. Duplicate documents can exist; the greatest updatedAt wins.
func (s *ConfigStore) LatestByKind(ctx context.Context, kind string) (models.Config, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	collection := s.DB.Collection("configs")
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	var cfg models.Config
	err := collection.FindOne(ctx, bson.M{"kind": kind}, opts).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Config{}, ErrNotFound
		}
		return models.Config{}, fmt.Errorf("failed to query config: %w", err)
	}

	cfg.NormalizeLists()
	return cfg, nil
}
