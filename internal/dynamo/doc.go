// Package dynamo provides core primitives for numerical integration of
// ordinary differential equations:
//
//   - [State]: flat vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//
// The flight driver adapts the projectile model onto these primitives so
// a single generic integrator implementation serves the whole repository.
package dynamo
