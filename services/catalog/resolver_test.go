package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogRepo "glossify/database/repository/catalog"
	"glossify/models"
)

type fakeRepo struct {
	tiers     map[string]*models.TierDocument
	features  map[string]models.FeatureDocument
	flats     map[string]*models.FlatFeatureDocument
	tierLoads int
}

func docKey(partition, category string) string { return partition + "/" + category }

func (r *fakeRepo) GetTierDocument(_ context.Context, partition, category string) (*models.TierDocument, error) {
	r.tierLoads++
	if doc, ok := r.tiers[docKey(partition, category)]; ok {
		return doc, nil
	}
	return nil, catalogRepo.ErrDocumentNotFound
}

func (r *fakeRepo) GetFeatureDocument(_ context.Context, partition, category string) (models.FeatureDocument, error) {
	if doc, ok := r.features[docKey(partition, category)]; ok {
		return doc, nil
	}
	return nil, catalogRepo.ErrDocumentNotFound
}

func (r *fakeRepo) GetFlatFeatureDocument(_ context.Context, partition, category string) (*models.FlatFeatureDocument, error) {
	if doc, ok := r.flats[docKey(partition, category)]; ok {
		return doc, nil
	}
	return nil, catalogRepo.ErrDocumentNotFound
}

type memoryCache struct {
	entries map[string]*models.ResolvedCatalog
	hits    int
}

func (c *memoryCache) Get(_ context.Context, partition, category string) (*models.ResolvedCatalog, bool) {
	if resolved, ok := c.entries[docKey(partition, category)]; ok {
		c.hits++
		return resolved, true
	}
	return nil, false
}

func (c *memoryCache) Set(_ context.Context, partition, category string, resolved *models.ResolvedCatalog) {
	if c.entries == nil {
		c.entries = make(map[string]*models.ResolvedCatalog)
	}
	c.entries[docKey(partition, category)] = resolved
}

func TestResolveUnsupportedVehicleType(t *testing.T) {
	resolver := &DefaultResolver{Repo: &fakeRepo{}}

	for _, vt := range []models.VehicleType{models.VehicleOther, models.VehicleMotorcycle} {
		_, err := resolver.Resolve(context.Background(), vt, CategoryService)
		require.Error(t, err)
		assert.True(t, HasCode(err, CodeUnsupportedVehicleType))
	}
}

func TestResolvePricedShape(t *testing.T) {
	repo := &fakeRepo{
		tiers: map[string]*models.TierDocument{
			"cars/service": {Entries: []models.TierEntry{
				{Name: "Basic Wash", Cost: 50, Features: []string{"exterior-wash", "tire-shine"}},
				{Name: "Premium Wash", Cost: 120, Popular: true,
					Features: []string{"exterior-wash", "tire-shine", "clay-bar", "wax"}},
				{Name: "Showroom Detail", Cost: 250, Description: "Our flagship package.",
					Features: []string{"everything"}},
			}},
		},
		features: map[string]models.FeatureDocument{
			"cars/service": {
				"exterior-wash": {Name: "Exterior Hand Wash"},
				"tire-shine":    {Name: "Tire Shine"},
				"clay-bar":      {Name: "Clay Bar Treatment"},
			},
		},
	}
	resolver := &DefaultResolver{Repo: repo}

	resolved, err := resolver.Resolve(context.Background(), models.VehicleCar, CategoryService)
	require.NoError(t, err)
	assert.Equal(t, models.ShapePriced, resolved.Shape)
	require.Len(t, resolved.Items, 3)

	// Ids derive from names; document order is preserved.
	assert.Equal(t, "basic-wash", resolved.Items[0].ID)
	assert.Equal(t, "premium-wash", resolved.Items[1].ID)
	assert.Equal(t, "showroom-detail", resolved.Items[2].ID)

	// Description synthesized from resolved feature names.
	assert.Equal(t, "Exterior Hand Wash, Tire Shine", resolved.Items[0].Description)
	// More than 3 features truncates with an ellipsis.
	assert.Equal(t, "Exterior Hand Wash, Tire Shine, Clay Bar Treatment...", resolved.Items[1].Description)
	// An explicit description wins over synthesis.
	assert.Equal(t, "Our flagship package.", resolved.Items[2].Description)

	assert.Equal(t, 50.0, resolved.Items[0].Price)
	assert.True(t, resolved.Items[1].Popular)
}

func TestResolvePricedShapeUnknownFeatureDisplaysRawID(t *testing.T) {
	repo := &fakeRepo{
		tiers: map[string]*models.TierDocument{
			"trucks/wheels": {Entries: []models.TierEntry{
				{Name: "Wheel Polish", Cost: 80, Features: []string{"mystery-feature"}},
			}},
		},
		// Feature document absent entirely: soft degradation, not an error.
	}
	resolver := &DefaultResolver{Repo: repo}

	resolved, err := resolver.Resolve(context.Background(), models.VehicleTruck, "wheels")
	require.NoError(t, err)
	assert.Equal(t, "mystery-feature", resolved.Items[0].Description)
}

func TestResolveFlatFallback(t *testing.T) {
	repo := &fakeRepo{
		flats: map[string]*models.FlatFeatureDocument{
			"suvs/trim": {Entries: []models.FlatFeatureEntry{
				{Key: "trim-restore", Name: "Trim Restore"},
				{Key: "trim-seal", Name: "Trim Seal"},
				{Key: "trim-dye", Name: "Trim Dye"},
			}},
		},
	}
	resolver := &DefaultResolver{Repo: repo}

	resolved, err := resolver.Resolve(context.Background(), models.VehicleSUV, "trim")
	require.NoError(t, err)
	assert.Equal(t, models.ShapeFeatureOnly, resolved.Shape)
	require.Len(t, resolved.Items, 3)

	// The first entry is the default recommendation; the rest are not.
	assert.True(t, resolved.Items[0].Popular)
	assert.False(t, resolved.Items[1].Popular)
	assert.False(t, resolved.Items[2].Popular)

	// No pricing data: everything costs 0 and each entry is its own feature.
	for _, item := range resolved.Items {
		assert.Equal(t, 0.0, item.Price)
		require.Len(t, item.FeatureIDs, 1)
	}
	assert.Equal(t, []string{"trim-restore"}, resolved.Items[0].FeatureIDs)
}

func TestResolveNoDataForCategory(t *testing.T) {
	resolver := &DefaultResolver{Repo: &fakeRepo{}}

	_, err := resolver.Resolve(context.Background(), models.VehicleCar, "engine")
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeNoDataForCategory))
}

func TestResolveUsesCache(t *testing.T) {
	repo := &fakeRepo{
		tiers: map[string]*models.TierDocument{
			"cars/service": {Entries: []models.TierEntry{{Name: "Basic Wash", Cost: 50}}},
		},
	}
	cache := &memoryCache{}
	resolver := &DefaultResolver{Repo: repo, Cache: cache}

	_, err := resolver.Resolve(context.Background(), models.VehicleCar, CategoryService)
	require.NoError(t, err)
	_, err = resolver.Resolve(context.Background(), models.VehicleCar, CategoryService)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.tierLoads, "second resolution must come from cache")
	assert.Equal(t, 1, cache.hits)
}
