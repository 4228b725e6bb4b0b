package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// StepVelocity advances one velocity component by a tick of dt seconds.
// Acceleration wins over friction; with neither the speed is only clamped.
func StepVelocity(dt, vel, accel, friction, max float64) float64 {
	if accel != 0 {
		return ClampSpeed(vel+accel*dt, max)
	}
	if friction != 0 {
		return ApplyFriction(vel, friction*dt)
	}
	return ClampSpeed(vel, max)
}
