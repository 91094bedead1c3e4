package ballistics

import "github.com/stepperanch/projsim/internal/geom"

// Trajectory is an append-only ordered sequence of spacetime points. The
// first point is the launch position; times increase by the integration
// step, except possibly the final ground-clamped point.
type Trajectory struct {
	points []geom.Point
}

func (t *Trajectory) Append(p geom.Point) {
	t.points = append(t.points, p)
}

func (t *Trajectory) Points() []geom.Point {
	return t.points
}

func (t *Trajectory) Len() int {
	return len(t.points)
}

// FinalPoint returns the last point, or a zero point for an empty
// trajectory.
func (t *Trajectory) FinalPoint() geom.Point {
	if len(t.points) == 0 {
		return geom.Point{}
	}
	return t.points[len(t.points)-1]
}

// FlightTime is the time coordinate of the final point.
func (t *Trajectory) FlightTime() float64 {
	return t.FinalPoint().T
}
