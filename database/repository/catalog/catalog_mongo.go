package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"glossify/database"
	"glossify/models"
)

// Document kinds stored in the catalog_documents collection.
const (
	kindTiers    = "tiers"
	kindFeatures = "features"
	kindFlat     = "flat"
)

// MongoCatalogRepo is the MongoDB-backed CatalogRepository.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo returns a repo bound to the catalog_documents collection.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	return &MongoCatalogRepo{coll: database.DB().Collection("catalog_documents")}
}

// rawDocument is the stored envelope. Data stays raw so name-keyed mappings
// can be walked in stored key order; decoding into a Go map would shuffle
// the entries.
type rawDocument struct {
	Partition string   `bson:"partition"`
	Category  string   `bson:"category"`
	Kind      string   `bson:"kind"`
	Data      bson.Raw `bson:"data"`
}

func (r *MongoCatalogRepo) fetch(ctx context.Context, partition, category, kind string) (bson.Raw, error) {
	filter := bson.M{"partition": partition, "category": category, "kind": kind}
	var doc rawDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s document for %s/%s: %w", kind, partition, category, err)
	}
	return doc.Data, nil
}

// GetTierDocument loads the priced tier-document for a partition and category.
func (r *MongoCatalogRepo) GetTierDocument(ctx context.Context, partition, category string) (*models.TierDocument, error) {
	data, err := r.fetch(ctx, partition, category, kindTiers)
	if err != nil {
		return nil, err
	}

	elements, err := data.Elements()
	if err != nil {
		return nil, fmt.Errorf("malformed tier document for %s/%s: %w", partition, category, err)
	}

	doc := &models.TierDocument{}
	for _, elem := range elements {
		sub, ok := elem.Value().DocumentOK()
		if !ok {
			continue
		}
		var entry models.TierEntry
		if err := bson.Unmarshal(sub, &entry); err != nil {
			return nil, fmt.Errorf("malformed tier entry %q for %s/%s: %w", elem.Key(), partition, category, err)
		}
		entry.Name = elem.Key()
		doc.Entries = append(doc.Entries, entry)
	}
	return doc, nil
}

// GetFeatureDocument loads the companion feature-document.
func (r *MongoCatalogRepo) GetFeatureDocument(ctx context.Context, partition, category string) (models.FeatureDocument, error) {
	data, err := r.fetch(ctx, partition, category, kindFeatures)
	if err != nil {
		return nil, err
	}
	fd := models.FeatureDocument{}
	if err := bson.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("malformed feature document for %s/%s: %w", partition, category, err)
	}
	return fd, nil
}

// GetFlatFeatureDocument loads the unpriced fallback document.
func (r *MongoCatalogRepo) GetFlatFeatureDocument(ctx context.Context, partition, category string) (*models.FlatFeatureDocument, error) {
	data, err := r.fetch(ctx, partition, category, kindFlat)
	if err != nil {
		return nil, err
	}

	elements, err := data.Elements()
	if err != nil {
		return nil, fmt.Errorf("malformed flat feature document for %s/%s: %w", partition, category, err)
	}

	doc := &models.FlatFeatureDocument{}
	for _, elem := range elements {
		sub, ok := elem.Value().DocumentOK()
		if !ok {
			continue
		}
		var entry models.FlatFeatureEntry
		if err := bson.Unmarshal(sub, &entry); err != nil {
			return nil, fmt.Errorf("malformed flat feature entry %q for %s/%s: %w", elem.Key(), partition, category, err)
		}
		entry.Key = elem.Key()
		doc.Entries = append(doc.Entries, entry)
	}
	return doc, nil
}
