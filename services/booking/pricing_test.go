package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glossify/models"
)

func testCatalogs() (*models.ResolvedCatalog, map[models.AddonCategory]*models.ResolvedCatalog) {
	service := &models.ResolvedCatalog{
		Shape: models.ShapePriced,
		Items: []models.CatalogItem{
			{ID: "basic-wash", Name: "Basic Wash", Price: 50},
			{ID: "premium-wash", Name: "Premium Wash", Price: 120},
		},
	}
	addons := map[models.AddonCategory]*models.ResolvedCatalog{
		models.AddonWindows: {
			Shape: models.ShapePriced,
			Items: []models.CatalogItem{
				{ID: "window-tinting", Name: "Window Tinting", Price: 200},
			},
		},
		models.AddonWheels: {
			Shape: models.ShapePriced,
			Items: []models.CatalogItem{
				{ID: "wheel-polish", Name: "Wheel Polish", Price: 80},
			},
		},
	}
	return service, addons
}

func TestComputeTotalSumsSelectedTiers(t *testing.T) {
	service, addons := testCatalogs()

	s := models.NewSelectionModel()
	s = SelectServiceTier(s, "basic-wash")
	s = ToggleAddonTier(s, models.AddonWindows, "window-tinting")

	assert.Equal(t, 250.0, ComputeTotal(s, service, addons))

	// Deselecting the add-on drops the total back to the service price.
	s = ToggleAddonTier(s, models.AddonWindows, "window-tinting")
	assert.Equal(t, 50.0, ComputeTotal(s, service, addons))
}

func TestComputeTotalIsDeterministic(t *testing.T) {
	service, addons := testCatalogs()

	s := models.NewSelectionModel()
	s = SelectServiceTier(s, "premium-wash")
	s = ToggleAddonTier(s, models.AddonWindows, "window-tinting")
	s = ToggleAddonTier(s, models.AddonWheels, "wheel-polish")

	first := ComputeTotal(s, service, addons)
	second := ComputeTotal(s, service, addons)
	assert.Equal(t, first, second)
	assert.Equal(t, 400.0, first)
}

func TestComputeTotalWithNoSelection(t *testing.T) {
	service, addons := testCatalogs()
	assert.Equal(t, 0.0, ComputeTotal(models.NewSelectionModel(), service, addons))
}

func TestComputeTotalStaleReferencesPriceZero(t *testing.T) {
	service, addons := testCatalogs()

	s := models.NewSelectionModel()
	s = SelectServiceTier(s, "discontinued-tier")
	s = ToggleAddonTier(s, models.AddonWindows, "removed-addon")
	s = ToggleAddonTier(s, models.AddonTrim, "trim-restore")

	// Stale ids and categories with no resolved catalog contribute 0
	// instead of failing the summary.
	assert.Equal(t, 0.0, ComputeTotal(s, service, addons))

	// Unresolved catalogs degrade the same way.
	assert.Equal(t, 0.0, ComputeTotal(s, nil, nil))
}
