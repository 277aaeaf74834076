package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glossify/models"
	catalogsvc "glossify/services/catalog"
)

func TestEnsureCarouselRunsOncePerVehicleAndKey(t *testing.T) {
	svc := &DefaultBookingSessionService{}
	sess := &models.BookingSession{
		Selection: SelectVehicleType(models.NewSelectionModel(), models.VehicleCar),
	}
	tiers := []models.CatalogItem{
		{ID: "basic"},
		{ID: "deluxe", Popular: true},
	}

	svc.ensureCarousel(sess, models.CarouselKeyService, tiers)
	assert.Equal(t, 1, sess.CarouselIndex[models.CarouselKeyService], "centers on the popular tier")

	// The user navigates away; a later read must not re-center.
	sess.CarouselIndex[models.CarouselKeyService] = 0
	svc.ensureCarousel(sess, models.CarouselKeyService, tiers)
	assert.Equal(t, 0, sess.CarouselIndex[models.CarouselKeyService])

	// A different vehicle type is a fresh resolution and initializes again.
	sess.Selection = SelectVehicleType(sess.Selection, models.VehicleTruck)
	svc.ensureCarousel(sess, models.CarouselKeyService, tiers)
	assert.Equal(t, 1, sess.CarouselIndex[models.CarouselKeyService])
}

func TestCategoryForKey(t *testing.T) {
	category, err := categoryForKey(models.CarouselKeyService)
	require.NoError(t, err)
	assert.Equal(t, catalogsvc.CategoryService, category)

	category, err = categoryForKey("windows")
	require.NoError(t, err)
	assert.Equal(t, "windows", category)

	_, err = categoryForKey("spoilers")
	assert.ErrorIs(t, err, ErrUnknownCarousel)
}

func TestIgnoreCatalogErr(t *testing.T) {
	assert.NoError(t, ignoreCatalogErr(catalogsvc.NewNoDataForCategoryError("cars", "engine")))
	assert.NoError(t, ignoreCatalogErr(catalogsvc.NewUnsupportedVehicleTypeError("other")))
	assert.Error(t, ignoreCatalogErr(assert.AnError))
}
