package catalog

import (
	"context"
	"errors"

	"glossify/models"
)

// ErrDocumentNotFound is returned when no document of the requested kind
// exists for the (partition, category) pair.
var ErrDocumentNotFound = errors.New("catalog document not found")

// CatalogRepository loads the raw catalog documents for a partition and
// category. It knows nothing about fallback rules; that is the resolver's
// job.
type CatalogRepository interface {
	// GetTierDocument loads the priced tier-document, preserving the
	// stored entry order.
	GetTierDocument(ctx context.Context, partition, category string) (*models.TierDocument, error)
	// GetFeatureDocument loads the companion feature-document.
	GetFeatureDocument(ctx context.Context, partition, category string) (models.FeatureDocument, error)
	// GetFlatFeatureDocument loads the unpriced fallback document,
	// preserving the stored entry order.
	GetFlatFeatureDocument(ctx context.Context, partition, category string) (*models.FlatFeatureDocument, error)
}
