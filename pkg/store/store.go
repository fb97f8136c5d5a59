// Package store persists chart records across renders.
//
// A Record captures one rendered chart: the options it was built with,
// summary statistics from layout, and metadata for each produced artifact.
// Backends:
//   - memory: in-memory storage for development/testing
//   - mongo: MongoDB-backed storage for the render server
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a chart record does not exist.
	ErrNotFound = errors.New("chart not found")
)

// Artifact describes one rendered output belonging to a record.
type Artifact struct {
	Format string `json:"format" bson:"format"`
	Style  string `json:"style" bson:"style"`
	Size   int    `json:"size" bson:"size"`
	Hash   string `json:"hash" bson:"hash"`
}

// Record stores the metadata of a rendered chart.
type Record struct {
	ID           string     `json:"id" bson:"_id"`
	Title        string     `json:"title" bson:"title"`
	Kind         string     `json:"kind" bson:"kind"`
	Style        string     `json:"style" bson:"style"`
	SeriesCount  int        `json:"series_count" bson:"series_count"`
	PointCount   int        `json:"point_count" bson:"point_count"`
	LabelCount   int        `json:"label_count" bson:"label_count"`
	NudgedLabels int        `json:"nudged_labels" bson:"nudged_labels"`
	Artifacts    []Artifact `json:"artifacts" bson:"artifacts"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}

// NewRecord creates a record with a fresh ID and timestamps.
func NewRecord(title, kind, style string) *Record {
	now := time.Now().UTC()
	return &Record{
		ID:        uuid.NewString(),
		Title:     title,
		Kind:      kind,
		Style:     style,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store is the interface for chart record storage backends.
type Store interface {
	// Get retrieves a record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]*Record, error)

	// Put stores a record, replacing any existing record with the same ID.
	Put(ctx context.Context, rec *Record) error

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the backend.
	Close(ctx context.Context) error
}
