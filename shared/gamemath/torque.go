package gamemath

import "math"

// SigmoidLimit bounds the magnitude of SigmoidTorque.
const SigmoidLimit = 5.0

// SigmoidTorque is the logistic control curve driving the arms.
// It returns a value in (-5, 5): negative when the arm lags behind a target
// that is ahead of it in the positive direction, damped by omega.
func SigmoidTorque(deltaTheta, omega, deltaWeight float64) float64 {
	return 2*SigmoidLimit/(1+math.Exp(omega+deltaTheta*deltaWeight)) - SigmoidLimit
}
