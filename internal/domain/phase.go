package domain

// Phase represents the current phase of a drill
type Phase string

const (
	PhaseSetup  Phase = "SETUP"  // Text and count editable, hiding disabled
	PhaseActive Phase = "ACTIVE" // Text frozen, words can be hidden
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo checks if a transition from current phase to target phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseSetup:  {PhaseActive},
		PhaseActive: {PhaseSetup},
	}

	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}
