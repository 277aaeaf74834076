package booking

import (
	"glossify/models"
	catalogsvc "glossify/services/catalog"
)

// The wizard is a strictly linear chain, so it is an index into
// models.StepOrder with ±1 moves and bounds clamping, not a general graph.

// CanAdvance reports whether the current step's precondition holds. This is
// a defensive re-check: the presentation layer is expected to have disabled
// the advance affordance already.
func CanAdvance(w models.WizardState, sel models.SelectionModel) bool {
	switch w.CurrentStep {
	case models.StepVehicleSelection:
		// A type with no catalog partition has no services at all; the
		// wizard stays on vehicle selection showing the empty state.
		if _, supported := catalogsvc.PartitionFor(sel.Vehicle.Type); !supported {
			return false
		}
		return sel.Vehicle.DetailsComplete()
	case models.StepServiceTier:
		return sel.ServiceTierID != ""
	case models.StepAddons:
		// Add-ons are optional; the step is always passable.
		return true
	case models.StepSchedule:
		return len(sel.Schedule.Dates) > 0 && sel.Schedule.Time != ""
	case models.StepPayment:
		return sel.PaymentMethod != ""
	}
	return false
}

// Advance moves to the next step when the current step's precondition
// holds; otherwise it is a no-op. The departed step joins CompletedSteps.
// The payment step does not advance here — confirmation owns the move to
// the success terminal.
func Advance(w models.WizardState, sel models.SelectionModel) models.WizardState {
	idx := models.StepIndex(w.CurrentStep)
	if idx < 0 || idx >= len(models.StepOrder)-1 {
		return w
	}
	if !CanAdvance(w, sel) {
		return w
	}
	departed := w.CurrentStep
	w.CurrentStep = models.StepOrder[idx+1]
	w.CompletedSteps = markCompleted(w.CompletedSteps, departed)
	return w
}

// Retreat moves to the immediately preceding step. It has no precondition
// and never removes the departed step from CompletedSteps: completion is
// monotonic within a session.
func Retreat(w models.WizardState) models.WizardState {
	idx := models.StepIndex(w.CurrentStep)
	if idx <= 0 {
		return w
	}
	w.CurrentStep = models.StepOrder[idx-1]
	return w
}

// Complete moves the wizard from the payment step to the success terminal
// after a confirmed submission.
func Complete(w models.WizardState, sel models.SelectionModel) models.WizardState {
	if w.CurrentStep != models.StepPayment || !CanAdvance(w, sel) {
		return w
	}
	w.CompletedSteps = markCompleted(w.CompletedSteps, models.StepPayment)
	w.CurrentStep = models.StepSuccess
	return w
}

// Fail moves the wizard to the error terminal.
func Fail(w models.WizardState) models.WizardState {
	w.CurrentStep = models.StepError
	return w
}

// ResetWizard returns the wizard to the first step with an empty completed
// set.
func ResetWizard() models.WizardState {
	return models.NewWizardState()
}

func markCompleted(completed []models.Step, step models.Step) []models.Step {
	for _, done := range completed {
		if done == step {
			return completed
		}
	}
	next := make([]models.Step, 0, len(completed)+1)
	next = append(next, completed...)
	return append(next, step)
}
