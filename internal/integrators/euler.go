package integrators

import "github.com/stepperanch/projsim/internal/dynamo"

// Euler is the explicit first-order stepper. Kept for accuracy
// comparisons against RK4; not used by the flight driver.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
