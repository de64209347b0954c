// server/internal/models/config.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Config document kinds. One collection holds both; lookups always
// filter by kind so the form-options document and the passkey document
// can never shadow each other.
const (
	ConfigKindForm    = "form"
	ConfigKindPassKey = "passKey"
)

// ConfigOption is one selectable entry in a form pick-list.
type ConfigOption struct {
	Value string `bson:"value,omitempty" json:"value"`
	Name  string `bson:"name,omitempty" json:"name"`
}

// Config is a kind-tagged configuration document. The "form" kind
// carries the pick-lists and the default map center; the "passKey" kind
// carries the shared secret gating the form.
type Config struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind         string             `bson:"kind" json:"kind"`
	APKVersion   []ConfigOption     `bson:"apkVersion,omitempty" json:"apkVersion,omitempty"`
	PresenceType []ConfigOption     `bson:"presenceType,omitempty" json:"presenceType,omitempty"`
	WorkType     []ConfigOption     `bson:"workType,omitempty" json:"workType,omitempty"`
	Latitude     string             `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    string             `bson:"longitude,omitempty" json:"longitude,omitempty"`
	PassKey      string             `bson:"passKey,omitempty" json:"passKey,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Normalize fills a missing Value from Name and vice versa.
// Historical config documents sometimes carry only one of the two.
func (o ConfigOption) Normalize() ConfigOption {
	if o.Value == "" {
		o.Value = o.Name
	}
	if o.Name == "" {
		o.Name = o.Value
	}
	return o
}

// NormalizeOptions normalizes a pick-list in place-order, dropping
// entries that carry neither a value nor a name.
func NormalizeOptions(opts []ConfigOption) []ConfigOption {
	out := make([]ConfigOption, 0, len(opts))
	for _, o := range opts {
		n := o.Normalize()
		if n.Value == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

// NormalizeLists applies option normalization to every pick-list of a
// config document. Called once at the read boundary.
func (c *Config) NormalizeLists() {
	c.APKVersion = NormalizeOptions(c.APKVersion)
	c.PresenceType = NormalizeOptions(c.PresenceType)
	c.WorkType = NormalizeOptions(c.WorkType)
}
