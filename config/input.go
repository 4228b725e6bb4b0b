package config

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionShoot
	ActionPause
	ActionRestart
	ActionNextLevel
	ActionSlowMotion
	ActionToggleDebug
	ActionSave
	ActionLoad
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds input tuning that does not depend on a device
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// TimeScale applied while ActionSlowMotion is held
	SlowMotionScale float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone:  0.25,
		SlowMotionScale: 0.25,
	}
}
