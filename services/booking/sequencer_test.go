package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glossify/models"
)

func completeVehicleSelection() models.SelectionModel {
	s := models.NewSelectionModel()
	s = SelectVehicleType(s, models.VehicleCar)
	return UpdateVehicleDetails(s, VehicleDetailsUpdate{
		Make:  strPtr("Toyota"),
		Model: strPtr("Camry"),
		Year:  strPtr("2022"),
		Color: strPtr("Black"),
	})
}

func TestAdvanceWithCompleteVehicle(t *testing.T) {
	sel := completeVehicleSelection()
	w := models.NewWizardState()

	w = Advance(w, sel)

	assert.Equal(t, models.StepServiceTier, w.CurrentStep)
	assert.True(t, w.IsCompleted(models.StepVehicleSelection))
}

func TestAdvanceBlockedWithoutVehicleDetails(t *testing.T) {
	sel := models.NewSelectionModel()
	sel = SelectVehicleType(sel, models.VehicleCar)
	w := models.NewWizardState()

	w = Advance(w, sel)

	assert.Equal(t, models.StepVehicleSelection, w.CurrentStep)
	assert.Empty(t, w.CompletedSteps)
}

func TestAdvanceSuvNeedsNoDetails(t *testing.T) {
	sel := models.NewSelectionModel()
	sel = SelectVehicleType(sel, models.VehicleSUV)
	w := models.NewWizardState()

	w = Advance(w, sel)

	assert.Equal(t, models.StepServiceTier, w.CurrentStep)
}

func TestAdvanceBlockedForUnsupportedVehicleType(t *testing.T) {
	sel := models.NewSelectionModel()
	sel = SelectVehicleType(sel, models.VehicleOther)
	w := models.NewWizardState()

	w = Advance(w, sel)

	assert.Equal(t, models.StepVehicleSelection, w.CurrentStep)
	assert.Empty(t, w.CompletedSteps)
}

func TestAdvancePreconditionsPerStep(t *testing.T) {
	sel := completeVehicleSelection()
	w := models.NewWizardState()
	w = Advance(w, sel)
	require.Equal(t, models.StepServiceTier, w.CurrentStep)

	// No service tier selected: blocked.
	w = Advance(w, sel)
	assert.Equal(t, models.StepServiceTier, w.CurrentStep)

	sel = SelectServiceTier(sel, "basic-wash")
	w = Advance(w, sel)
	require.Equal(t, models.StepAddons, w.CurrentStep)

	// Add-ons are optional; the step is always passable.
	w = Advance(w, sel)
	require.Equal(t, models.StepSchedule, w.CurrentStep)

	// Schedule needs at least one date and a time.
	w = Advance(w, sel)
	assert.Equal(t, models.StepSchedule, w.CurrentStep)
	sel = SetSchedule(sel, []string{"2026-09-01"}, "")
	w = Advance(w, sel)
	assert.Equal(t, models.StepSchedule, w.CurrentStep)
	sel = SetSchedule(sel, []string{"2026-09-01"}, "morning")
	w = Advance(w, sel)
	require.Equal(t, models.StepPayment, w.CurrentStep)

	// Payment does not advance linearly; confirmation owns the terminal move.
	sel = SetPaymentMethod(sel, models.PayCard)
	w = Advance(w, sel)
	assert.Equal(t, models.StepPayment, w.CurrentStep)

	w = Complete(w, sel)
	assert.Equal(t, models.StepSuccess, w.CurrentStep)
	assert.True(t, w.IsCompleted(models.StepPayment))
}

func TestCompletionIsMonotonic(t *testing.T) {
	sel := completeVehicleSelection()
	sel = SelectServiceTier(sel, "basic-wash")

	w := models.NewWizardState()
	w = Advance(w, sel) // -> service-tier
	w = Advance(w, sel) // -> addons, service-tier completed
	require.True(t, w.IsCompleted(models.StepServiceTier))

	w = Retreat(w)
	assert.Equal(t, models.StepServiceTier, w.CurrentStep)
	assert.True(t, w.IsCompleted(models.StepServiceTier), "retreating never un-completes a step")

	w = Advance(w, sel)
	count := 0
	for _, done := range w.CompletedSteps {
		if done == models.StepServiceTier {
			count++
		}
	}
	assert.Equal(t, 1, count, "re-advancing must not duplicate the entry")
}

func TestRetreatClampsAtFirstStep(t *testing.T) {
	w := models.NewWizardState()
	w = Retreat(w)
	assert.Equal(t, models.StepVehicleSelection, w.CurrentStep)
}

func TestCompleteRequiresPaymentStep(t *testing.T) {
	sel := completeVehicleSelection()
	sel = SetPaymentMethod(sel, models.PayCard)
	w := models.NewWizardState()

	// Not at payment yet: no-op.
	w = Complete(w, sel)
	assert.Equal(t, models.StepVehicleSelection, w.CurrentStep)
}

func TestFailAndReset(t *testing.T) {
	w := models.NewWizardState()
	w = Fail(w)
	assert.Equal(t, models.StepError, w.CurrentStep)

	w = ResetWizard()
	assert.Equal(t, models.StepVehicleSelection, w.CurrentStep)
	assert.Empty(t, w.CompletedSteps)
}
