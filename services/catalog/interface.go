package catalog

import (
	"context"

	catalogRepo "glossify/database/repository/catalog"
	"glossify/models"
)

// CategoryService is the implicit category id for the main service tiers;
// add-on categories use their own ids.
const CategoryService = "service"

// Resolver resolves the purchasable catalog for a vehicle type and
// category, applying the priced-then-flat fallback chain.
type Resolver interface {
	Resolve(ctx context.Context, vehicleType models.VehicleType, category string) (*models.ResolvedCatalog, error)
}

// DefaultResolver implements Resolver on top of the catalog document repo
// with an optional result cache.
type DefaultResolver struct {
	Repo  catalogRepo.CatalogRepository
	Cache ResultCache
}
