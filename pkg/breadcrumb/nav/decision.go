package nav

// ExitDecision is the contract returned to back-navigation callers. It
// tells the host platform whether the application consumed the gesture
// or has nothing left to navigate back to and should be terminated.
type ExitDecision int

const (
	ContinueApp ExitDecision = iota // Gesture handled internally, keep running
	ExitApp                         // Stack already at root, terminate the app
)

// ShouldExit reports whether the host platform should terminate the
// application.
func (d ExitDecision) ShouldExit() bool {
	return d == ExitApp
}

func (d ExitDecision) String() string {
	switch d {
	case ContinueApp:
		return "continue"
	case ExitApp:
		return "exit"
	default:
		return "unknown"
	}
}
