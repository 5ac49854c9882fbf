package scaffold

// Observer is notified as each step starts and finishes. Events are purely
// informational.
type Observer interface {
	StepStarted(step Step)
	StepSucceeded(step Step)
	StepFailed(step Step, err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) StepStarted(Step) {}
func (NopObserver) StepSucceeded(Step) {}
func (NopObserver) StepFailed(Step, error) {}
