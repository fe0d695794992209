package narrator

// State is the progress of one orchestrated translate-then-speak call.
type State string

const (
	StateIdle            State = "idle"
	StateAwaitingStepOne State = "awaiting_step_one"
	StateAwaitingStepTwo State = "awaiting_step_two"
	StateCompleted       State = "completed"
	StateFailed          State = "failed"
)

func (s State) String() string {
	return string(s)
}

func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

const EventTransition = "narrator.transition"

// Transition is the data of an EventTransition notification.
type Transition struct {
	CallID string
	From   State
	To     State
	Err    error
}
