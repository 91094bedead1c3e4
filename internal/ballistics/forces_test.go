package ballistics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stepperanch/projsim/internal/ballistics"
	"github.com/stepperanch/projsim/internal/geom"
)

var _ = Describe("Force model", func() {
	var pingpong ballistics.Params

	BeforeEach(func() {
		pingpong = ballistics.Params{
			Mass:       0.0027,
			Radius:     0.02,
			AirDensity: 1.27,
			DragCoeff:  0.5,
			SpinFactor: 0.04,
		}
	})

	Describe("construction", func() {
		It("rejects non-positive mass", func() {
			bad := pingpong
			bad.Mass = 0
			_, err := ballistics.New(geom.Point{}, geom.Vec3{}, geom.Vec3{}, bad)
			Expect(err).To(HaveOccurred())

			bad.Mass = -0.1
			_, err = ballistics.New(geom.Point{}, geom.Vec3{}, geom.Vec3{}, bad)
			Expect(err).To(HaveOccurred())
		})

		It("derives the Magnus factor from spin factor and mass", func() {
			// With vel=(1,0,0), spin=(0,0,1): spin × vel = (0,1,0),
			// so the Magnus acceleration is S/m along +Y = SpinFactor.
			bare := pingpong
			bare.AirDensity = 0
			p, err := ballistics.New(geom.Point{}, geom.Vec3{X: 1}, geom.Vec3{Z: 1}, bare)
			Expect(err).NotTo(HaveOccurred())

			a := p.Acceleration(geom.Vec3{X: 1}, geom.Vec3{})
			Expect(a.Y).To(BeNumerically("~", bare.SpinFactor, 1e-12))
		})
	})

	Describe("drag", func() {
		It("grows quadratically with relative speed", func() {
			noSpin := pingpong
			noSpin.SpinFactor = 0
			p, err := ballistics.New(geom.Point{}, geom.Vec3{}, geom.Vec3{}, noSpin)
			Expect(err).NotTo(HaveOccurred())

			gravity := geom.Vec3{Z: -ballistics.Gravity}
			dragAt := func(speed float64) float64 {
				a := p.Acceleration(geom.Vec3{X: speed}, geom.Vec3{})
				return a.Sub(gravity).Mag()
			}

			Expect(dragAt(20)).To(BeNumerically("~", 4*dragAt(10), 1e-9))
		})

		It("responds to wind through the relative velocity", func() {
			noSpin := pingpong
			noSpin.SpinFactor = 0
			p, err := ballistics.New(geom.Point{}, geom.Vec3{X: 10}, geom.Vec3{}, noSpin)
			Expect(err).NotTo(HaveOccurred())

			calm := p.Acceleration(geom.Vec3{X: 10}, geom.Vec3{})
			tail := p.Acceleration(geom.Vec3{X: 10}, geom.Vec3{X: 10})

			// A tailwind matching the velocity removes drag entirely.
			Expect(tail.Z).To(BeNumerically("~", -ballistics.Gravity, 1e-12))
			Expect(calm.X).To(BeNumerically("<", 0))
		})
	})

	Describe("trajectory", func() {
		It("returns a zero point when empty", func() {
			var tr ballistics.Trajectory
			Expect(tr.FinalPoint()).To(Equal(geom.Point{}))
			Expect(tr.Len()).To(BeZero())
		})

		It("appends in order and reports the final point", func() {
			var tr ballistics.Trajectory
			tr.Append(geom.NewPoint(0, 0, 10, 0))
			tr.Append(geom.NewPoint(1, 0, 9, 0.1))
			tr.Append(geom.NewPoint(2, 0, 7, 0.2))

			Expect(tr.Len()).To(Equal(3))
			Expect(tr.FinalPoint().T).To(Equal(0.2))
			Expect(tr.FlightTime()).To(Equal(0.2))
		})
	})
})
