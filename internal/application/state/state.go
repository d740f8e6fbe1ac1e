package state

// SceneState is the lifecycle stage of a loaded scene
type SceneState int

const (
	StateUnloaded SceneState = iota
	StateLoaded
	StateRunning
)

// String returns the string representation of the scene state
func (s SceneState) String() string {
	switch s {
	case StateUnloaded:
		return "Unloaded"
	case StateLoaded:
		return "Loaded"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// CanUpdate reports whether the frame loop may run in this state
func (s SceneState) CanUpdate() bool {
	return s == StateLoaded || s == StateRunning
}
