package catalog

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	catalogRepo "glossify/database/repository/catalog"
	"glossify/models"
	"glossify/utils"
)

// partitionMap maps vehicle types to their catalog partition. Types absent
// here have no catalog (motorcycle, other).
var partitionMap = map[models.VehicleType]string{
	models.VehicleCar:   "cars",
	models.VehicleTruck: "trucks",
	models.VehicleSUV:   "suvs",
	models.VehicleBoat:  "boats",
	models.VehicleRV:    "rvs",
}

// PartitionFor returns the catalog partition key for a vehicle type.
func PartitionFor(vehicleType models.VehicleType) (string, bool) {
	p, ok := partitionMap[vehicleType]
	return p, ok
}

// Resolve produces the ordered catalog for a vehicle type and category.
// It tries the priced tier-document first and falls back to the flat
// feature-document; the two shapes are never conflated.
func (r *DefaultResolver) Resolve(ctx context.Context, vehicleType models.VehicleType, category string) (*models.ResolvedCatalog, error) {
	partition, ok := PartitionFor(vehicleType)
	if !ok {
		return nil, NewUnsupportedVehicleTypeError(string(vehicleType))
	}

	if r.Cache != nil {
		if cached, ok := r.Cache.Get(ctx, partition, category); ok {
			return cached, nil
		}
	}

	resolved, err := r.resolveFromStore(ctx, partition, category)
	if err != nil {
		return nil, err
	}

	if r.Cache != nil {
		r.Cache.Set(ctx, partition, category, resolved)
	}
	return resolved, nil
}

func (r *DefaultResolver) resolveFromStore(ctx context.Context, partition, category string) (*models.ResolvedCatalog, error) {
	tierDoc, err := r.Repo.GetTierDocument(ctx, partition, category)
	switch {
	case err == nil:
		return r.buildPriced(ctx, partition, category, tierDoc)
	case errors.Is(err, catalogRepo.ErrDocumentNotFound):
		// Fall through to the flat shape.
	default:
		return nil, err
	}

	flatDoc, err := r.Repo.GetFlatFeatureDocument(ctx, partition, category)
	switch {
	case err == nil:
		return buildFeatureOnly(flatDoc), nil
	case errors.Is(err, catalogRepo.ErrDocumentNotFound):
		utils.GetLogger().Debug("catalog resolution miss",
			zap.String("code", string(CodeNotFound)),
			zap.String("partition", partition),
			zap.String("category", category))
		return nil, NewNoDataForCategoryError(partition, category)
	default:
		return nil, err
	}
}

func (r *DefaultResolver) buildPriced(ctx context.Context, partition, category string, doc *models.TierDocument) (*models.ResolvedCatalog, error) {
	features, err := r.Repo.GetFeatureDocument(ctx, partition, category)
	switch {
	case err == nil:
	case errors.Is(err, catalogRepo.ErrDocumentNotFound):
		// Missing feature-document degrades softly: ids display raw.
		features = models.FeatureDocument{}
	default:
		return nil, err
	}

	items := make([]models.CatalogItem, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		description := entry.Description
		if description == "" {
			description = synthesizeDescription(entry.Features, features)
		}
		items = append(items, models.CatalogItem{
			ID:            models.TierID(entry.Name),
			Name:          entry.Name,
			Price:         entry.Cost,
			Description:   description,
			FeatureIDs:    entry.Features,
			Popular:       entry.Popular,
			OriginalPrice: entry.OriginalPrice,
		})
	}
	return &models.ResolvedCatalog{Shape: models.ShapePriced, Items: items}, nil
}

// buildFeatureOnly converts the unpriced taxonomy into catalog items. The
// first entry carries the popular flag so default-highlight stays
// deterministic without explicit data.
func buildFeatureOnly(doc *models.FlatFeatureDocument) *models.ResolvedCatalog {
	items := make([]models.CatalogItem, 0, len(doc.Entries))
	for i, entry := range doc.Entries {
		name := entry.Name
		if name == "" {
			name = entry.Key
		}
		items = append(items, models.CatalogItem{
			ID:          models.TierID(name),
			Name:        name,
			Price:       0,
			Description: entry.Description,
			FeatureIDs:  []string{entry.Key},
			Popular:     i == 0,
		})
	}
	return &models.ResolvedCatalog{Shape: models.ShapeFeatureOnly, Items: items}
}

// synthesizeDescription builds a card description from up to 3 resolved
// feature names. Ids missing from the feature-document display raw.
func synthesizeDescription(featureIDs []string, features models.FeatureDocument) string {
	if len(featureIDs) == 0 {
		return ""
	}
	limit := len(featureIDs)
	if limit > 3 {
		limit = 3
	}
	names := make([]string, 0, limit)
	for _, id := range featureIDs[:limit] {
		if detail, ok := features[id]; ok && detail.Name != "" {
			names = append(names, detail.Name)
		} else {
			names = append(names, id)
		}
	}
	description := strings.Join(names, ", ")
	if len(featureIDs) > 3 {
		description += "..."
	}
	return description
}
