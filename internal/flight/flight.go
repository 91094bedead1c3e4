// Package flight drives a projectile forward in fixed time steps and
// applies the ground-contact terminal rule.
package flight

import (
	"fmt"

	"github.com/stepperanch/projsim/internal/ballistics"
	"github.com/stepperanch/projsim/internal/dynamo"
	"github.com/stepperanch/projsim/internal/geom"
	"github.com/stepperanch/projsim/internal/integrators"
)

// Metric observes each committed step of a run and reduces it to a single
// value. Implementations live in internal/metrics.
type Metric interface {
	Name() string
	Observe(pos geom.Point, vel geom.Vec3)
	Value() float64
	Reset()
}

// Termination records why a run stopped.
type Termination int

const (
	// Grounded: the projectile reached the ground (possibly clamped).
	Grounded Termination = iota
	// TimeExpired: the run hit MaxTime while still airborne.
	TimeExpired
)

func (t Termination) String() string {
	switch t {
	case Grounded:
		return "grounded"
	case TimeExpired:
		return "time_expired"
	default:
		return "unknown"
	}
}

type Config struct {
	TimeStep float64 // s, > 0
	MaxTime  float64 // s, > 0
	Wind     geom.Vec3
}

func (c Config) validate() error {
	if c.TimeStep <= 0 {
		return fmt.Errorf("flight: time step must be positive, got %f", c.TimeStep)
	}
	if c.MaxTime <= 0 {
		return fmt.Errorf("flight: max time must be positive, got %f", c.MaxTime)
	}
	return nil
}

type Result struct {
	Trajectory  ballistics.Trajectory
	Termination Termination
	Steps       int
	Metrics     map[string]float64
}

// Simulator owns an integrator and a set of metrics. It is single-use
// per goroutine: the projectile passed to Run is exclusively owned by
// that run until it returns.
type Simulator struct {
	integ   dynamo.Integrator
	metrics []Metric
}

// New builds a simulator around the given stepper; nil selects RK4.
func New(integ dynamo.Integrator) *Simulator {
	if integ == nil {
		integ = integrators.NewRK4()
	}
	return &Simulator{integ: integ}
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

// Run integrates the projectile until it is grounded or MaxTime is
// reached. The trajectory's first point is the launch position; if the
// projectile starts grounded the trajectory has exactly that one point.
//
// Steps are fixed size. The per-step truncation error is O(h^5), O(h^4)
// over the run; choosing a step small enough for the fastest force scale
// (strong spin, high drag) is the caller's responsibility.
func (s *Simulator) Run(p *ballistics.Projectile, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{Metrics: make(map[string]float64)}
	result.Trajectory.Append(p.Position())
	for _, m := range s.metrics {
		m.Observe(p.Position(), p.Velocity())
	}

	for !p.Grounded() && p.Time() < cfg.MaxTime {
		clamped := Advance(s.integ, p, cfg.Wind, cfg.TimeStep)
		result.Steps++
		result.Trajectory.Append(p.Position())
		for _, m := range s.metrics {
			m.Observe(p.Position(), p.Velocity())
		}
		if clamped {
			break
		}
	}

	if p.Grounded() {
		result.Termination = Grounded
	} else {
		result.Termination = TimeExpired
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// Advance moves the projectile forward by one step and commits the new
// position and velocity as a pair. When the step carries the projectile
// below ground it applies the terminal clamp instead: z set to exactly 0,
// velocity zeroed. Reports whether the clamp fired. The discretization
// error at the ground boundary is bounded by one step; there is no
// sub-step root-find.
func Advance(integ dynamo.Integrator, p *ballistics.Projectile, wind geom.Vec3, dt float64) bool {
	sys := ballistics.System{Proj: p, Wind: wind}
	t := p.Time()
	next := integ.Step(sys, ballistics.StateOf(p), t, dt)
	pos, vel := ballistics.Unpack(next, t+dt)

	if pos.Z < 0 {
		pos.Vec3.Z = 0
		p.Advance(pos, geom.Vec3{})
		return true
	}

	p.Advance(pos, vel)
	return false
}

// Integrate is the plain-function form of a run: RK4, no metrics.
func Integrate(p *ballistics.Projectile, timeStep float64, wind geom.Vec3, maxTime float64) (ballistics.Trajectory, error) {
	result, err := New(nil).Run(p, Config{TimeStep: timeStep, MaxTime: maxTime, Wind: wind})
	if err != nil {
		return ballistics.Trajectory{}, err
	}
	return result.Trajectory, nil
}
