// Package store defines the record storage capability the proposal registry
// runs on, plus an in-memory implementation for tests and local runs.
package store

import (
	"context"

	"github.com/saxenaaman628/proposal-voting-system/internal/models"
)

// Store is a string-keyed proposal collection. Insert replaces any record
// with the same id and keeps its position. Values returns records in a
// stable order that follows insertion.
type Store interface {
	Get(ctx context.Context, id string) (models.Proposal, bool, error)
	Insert(ctx context.Context, p models.Proposal) error
	Remove(ctx context.Context, id string) (models.Proposal, bool, error)
	Values(ctx context.Context) ([]models.Proposal, error)
}
