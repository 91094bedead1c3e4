// Package ballistics models a spinning rigid projectile under gravity,
// quadratic air drag and the Magnus force.
//
// [Projectile] owns the physical state (spacetime position, velocity,
// spin, mass/shape/aerodynamic parameters) and exposes a pure
// [Projectile.Acceleration] force model. [System] adapts a projectile to
// the generic [dynamo.System] interface so it can be driven by any
// fixed-step integrator; the flight driver layers the ground-contact
// terminal rule on top.
package ballistics
