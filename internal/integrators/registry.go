package integrators

import (
	"fmt"

	"github.com/stepperanch/projsim/internal/dynamo"
)

// Get returns a fresh integrator by name.
func Get(name string) (dynamo.Integrator, error) {
	switch name {
	case "rk4":
		return NewRK4(), nil
	case "euler":
		return NewEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

// Names lists the available integrator names.
func Names() []string {
	return []string{"rk4", "euler"}
}
