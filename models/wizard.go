package models

// Step identifies one wizard step.
type Step string

const (
	StepVehicleSelection Step = "vehicle-selection"
	StepServiceTier      Step = "service-tier"
	StepAddons           Step = "addons"
	StepSchedule         Step = "schedule"
	StepPayment          Step = "payment"
	StepSuccess          Step = "success"
	StepError            Step = "error"
)

// StepOrder is the linear wizard chain. Success and error are terminal and
// deliberately not part of the chain.
var StepOrder = []Step{
	StepVehicleSelection,
	StepServiceTier,
	StepAddons,
	StepSchedule,
	StepPayment,
}

// StepIndex returns the position of s in the linear chain, or -1 for
// terminal steps.
func StepIndex(s Step) int {
	for i, step := range StepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// WizardState tracks the current step and which steps have been completed.
// Completion is monotonic within a session: retreating never removes an
// entry, only Reset clears them.
type WizardState struct {
	CurrentStep    Step   `bson:"currentStep" json:"currentStep"`
	CompletedSteps []Step `bson:"completedSteps" json:"completedSteps"`
}

// NewWizardState returns a wizard positioned at the first step.
func NewWizardState() WizardState {
	return WizardState{CurrentStep: StepVehicleSelection}
}

// IsCompleted reports whether the step has been completed this session.
func (w WizardState) IsCompleted(s Step) bool {
	for _, done := range w.CompletedSteps {
		if done == s {
			return true
		}
	}
	return false
}
