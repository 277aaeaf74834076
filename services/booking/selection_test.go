package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glossify/models"
)

func strPtr(s string) *string { return &s }

func TestSelectServiceTierToggles(t *testing.T) {
	s := models.NewSelectionModel()

	s = SelectServiceTier(s, "basic-wash")
	assert.Equal(t, "basic-wash", s.ServiceTierID)

	// Selecting the same tier again deselects it.
	s = SelectServiceTier(s, "basic-wash")
	assert.Empty(t, s.ServiceTierID)

	// Selecting two different tiers leaves only the second.
	s = SelectServiceTier(s, "basic-wash")
	s = SelectServiceTier(s, "premium-wash")
	assert.Equal(t, "premium-wash", s.ServiceTierID)
}

func TestToggleAddonTierPerCategory(t *testing.T) {
	s := models.NewSelectionModel()

	s = ToggleAddonTier(s, models.AddonWindows, "window-tinting")
	s = ToggleAddonTier(s, models.AddonWheels, "wheel-polish")

	// Categories are independent.
	assert.Equal(t, "window-tinting", s.AddonTiers[models.AddonWindows])
	assert.Equal(t, "wheel-polish", s.AddonTiers[models.AddonWheels])

	// A second tier in the same category replaces, not appends.
	s = ToggleAddonTier(s, models.AddonWindows, "ceramic-tint")
	assert.Equal(t, "ceramic-tint", s.AddonTiers[models.AddonWindows])
	assert.Equal(t, "wheel-polish", s.AddonTiers[models.AddonWheels])
	assert.Len(t, s.AddonTiers, 2)

	// Re-selecting removes the entry entirely, not a null placeholder.
	s = ToggleAddonTier(s, models.AddonWindows, "ceramic-tint")
	_, present := s.AddonTiers[models.AddonWindows]
	assert.False(t, present)
}

func TestToggleAddonTierDoesNotMutateInput(t *testing.T) {
	before := models.NewSelectionModel()
	before = ToggleAddonTier(before, models.AddonTrim, "trim-restore")

	after := ToggleAddonTier(before, models.AddonTrim, "trim-restore")

	assert.Equal(t, "trim-restore", before.AddonTiers[models.AddonTrim])
	assert.Empty(t, after.AddonTiers)
}

func TestSelectVehicleTypeClearsDetails(t *testing.T) {
	s := models.NewSelectionModel()
	s = SelectVehicleType(s, models.VehicleCar)
	s = UpdateVehicleDetails(s, VehicleDetailsUpdate{
		Make:  strPtr("Toyota"),
		Model: strPtr("Camry"),
		Year:  strPtr("2022"),
		Color: strPtr("Black"),
	})

	s = SelectVehicleType(s, models.VehicleBoat)

	assert.Equal(t, models.VehicleBoat, s.Vehicle.Type)
	assert.Empty(t, s.Vehicle.Make)
	assert.Empty(t, s.Vehicle.Model)
	assert.Empty(t, s.Vehicle.Year)
	assert.Empty(t, s.Vehicle.Color)
	assert.Empty(t, s.Vehicle.Length)
}

func TestUpdateVehicleDetailsMakeChangeClearsModel(t *testing.T) {
	s := models.NewSelectionModel()
	s = SelectVehicleType(s, models.VehicleCar)
	s = UpdateVehicleDetails(s, VehicleDetailsUpdate{Make: strPtr("Toyota"), Model: strPtr("Camry")})

	s = UpdateVehicleDetails(s, VehicleDetailsUpdate{Make: strPtr("Honda")})

	assert.Equal(t, "Honda", s.Vehicle.Make)
	assert.Empty(t, s.Vehicle.Model, "a stale model reference is worse than an empty field")

	// Setting make and model together keeps the provided model.
	s = UpdateVehicleDetails(s, VehicleDetailsUpdate{Make: strPtr("Ford"), Model: strPtr("F-150")})
	assert.Equal(t, "F-150", s.Vehicle.Model)
}

func TestUpdateVehicleDetailsColorLengthExclusive(t *testing.T) {
	s := models.NewSelectionModel()
	s = SelectVehicleType(s, models.VehicleCar)
	s = UpdateVehicleDetails(s, VehicleDetailsUpdate{Color: strPtr("Black")})
	assert.Equal(t, "Black", s.Vehicle.Color)

	s = UpdateVehicleDetails(s, VehicleDetailsUpdate{Length: strPtr("24ft")})
	assert.Equal(t, "24ft", s.Vehicle.Length)
	assert.Empty(t, s.Vehicle.Color, "color and length are never both populated")
}

func TestSetScheduleReplacesAndDedupes(t *testing.T) {
	s := models.NewSelectionModel()
	s = SetSchedule(s, []string{"2026-09-01", "2026-09-02", "2026-09-01"}, "morning")

	assert.Equal(t, []string{"2026-09-01", "2026-09-02"}, s.Schedule.Dates)
	assert.Equal(t, "morning", s.Schedule.Time)

	s = SetSchedule(s, []string{"2026-09-05"}, "afternoon")
	assert.Equal(t, []string{"2026-09-05"}, s.Schedule.Dates)
}

func TestToggleScheduleDate(t *testing.T) {
	s := models.NewSelectionModel()
	s = ToggleScheduleDate(s, "2026-09-01")
	s = ToggleScheduleDate(s, "2026-09-02")
	assert.Equal(t, []string{"2026-09-01", "2026-09-02"}, s.Schedule.Dates)

	// Selecting an already-selected date removes it.
	s = ToggleScheduleDate(s, "2026-09-01")
	assert.Equal(t, []string{"2026-09-02"}, s.Schedule.Dates)
}

func TestSetPaymentMethodReplaces(t *testing.T) {
	s := models.NewSelectionModel()
	s = SetPaymentMethod(s, models.PayCard)
	s = SetPaymentMethod(s, models.PayCash)
	assert.Equal(t, models.PayCash, s.PaymentMethod)
}
