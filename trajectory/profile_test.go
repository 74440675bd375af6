package trajectory

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/hobbyjobs/arm-navigation/logging"
	"github.com/hobbyjobs/arm-navigation/referenceframe"
)

func TestMinimumTime(t *testing.T) {
	// triangular: the peak of sqrt(1*1) never reaches the velocity bound
	test.That(t, MinimumTime(1, 2, 1), test.ShouldAlmostEqual, 2)
	// the triangular peak exactly reaches the bound
	test.That(t, MinimumTime(1, 1, 1), test.ShouldAlmostEqual, 2)
	// trapezoidal: 2*v/a + (d - v^2/a)/v
	test.That(t, MinimumTime(4, 1, 1), test.ShouldAlmostEqual, 5)
	test.That(t, MinimumTime(-4, 1, 1), test.ShouldAlmostEqual, 5)
	test.That(t, MinimumTime(3, 0.5, 2), test.ShouldAlmostEqual, 2*0.5/2+(3-0.25/2)/0.5)
	test.That(t, MinimumTime(0, 1, 1), test.ShouldEqual, 0.0)
}

func TestProfileLimitingJoint(t *testing.T) {
	p, clamped := synchronizedProfile(4, 5, minimumTimeRamp(4, 1, 1), 1, 1)
	test.That(t, clamped, test.ShouldBeFalse)
	test.That(t, p.RampTime, test.ShouldAlmostEqual, 1)
	test.That(t, p.CruiseTime, test.ShouldAlmostEqual, 3)
	test.That(t, p.Acceleration, test.ShouldAlmostEqual, 1)
	test.That(t, p.PeakVelocity, test.ShouldAlmostEqual, 1)

	test.That(t, p.Position(0), test.ShouldEqual, 0.0)
	test.That(t, p.Position(0.5), test.ShouldAlmostEqual, 0.125)
	test.That(t, p.Position(1), test.ShouldAlmostEqual, 0.5)
	test.That(t, p.Position(3), test.ShouldAlmostEqual, 2.5)
	test.That(t, p.Position(4.5), test.ShouldAlmostEqual, 3.875)
	test.That(t, p.Position(5), test.ShouldEqual, 4.0)
	test.That(t, p.Position(7), test.ShouldEqual, 4.0)
	test.That(t, p.Position(-1), test.ShouldEqual, 0.0)

	test.That(t, p.Velocity(0), test.ShouldEqual, 0.0)
	test.That(t, p.Velocity(0.5), test.ShouldAlmostEqual, 0.5)
	test.That(t, p.Velocity(2), test.ShouldAlmostEqual, 1)
	test.That(t, p.Velocity(4.5), test.ShouldAlmostEqual, 0.5)
	test.That(t, p.Velocity(5), test.ShouldEqual, 0.0)

	test.That(t, p.AccelerationAt(0.5), test.ShouldAlmostEqual, 1)
	test.That(t, p.AccelerationAt(2), test.ShouldEqual, 0.0)
	test.That(t, p.AccelerationAt(4.5), test.ShouldAlmostEqual, -1)
}

func TestProfileNegativeDisplacement(t *testing.T) {
	p, _ := synchronizedProfile(-4, 5, 1, 1, 1)
	test.That(t, p.Position(3), test.ShouldAlmostEqual, -2.5)
	test.That(t, p.Position(5), test.ShouldEqual, -4.0)
	test.That(t, p.Velocity(2), test.ShouldAlmostEqual, -1)
	test.That(t, p.AccelerationAt(0.5), test.ShouldAlmostEqual, -1)
	test.That(t, p.AccelerationAt(4.5), test.ShouldAlmostEqual, 1)
}

func TestProfileSlowedToSharedShape(t *testing.T) {
	// a joint that could finish sooner is stretched over the same ramp and duration
	p, clamped := synchronizedProfile(1, 5, 1, 1, 1)
	test.That(t, clamped, test.ShouldBeFalse)
	test.That(t, p.Duration, test.ShouldEqual, 5.0)
	test.That(t, p.RampTime, test.ShouldAlmostEqual, 1)
	test.That(t, p.Acceleration, test.ShouldAlmostEqual, 0.25)
	test.That(t, p.PeakVelocity, test.ShouldAlmostEqual, 0.25)
	test.That(t, p.Position(5), test.ShouldEqual, 1.0)
	test.That(t, p.WithinLimits(1, 1, 1e-9), test.ShouldBeTrue)
}

func TestProfileRederivedAtAccelerationBound(t *testing.T) {
	// the shared shape would need 0.025 of acceleration, above this joint's 0.01
	p, clamped := synchronizedProfile(0.25, 11, 1, 100, 0.01)
	test.That(t, clamped, test.ShouldBeFalse)
	test.That(t, p.RampTime, test.ShouldAlmostEqual, (11-math.Sqrt(21))/2)
	test.That(t, p.Acceleration, test.ShouldAlmostEqual, 0.01)
	test.That(t, p.WithinLimits(100, 0.01, 1e-9), test.ShouldBeTrue)
	test.That(t, p.Position(11), test.ShouldEqual, 0.25)
	// the cruise and deceleration formulas agree where they meet
	boundary := p.Duration - p.RampTime
	cruise := 0.5*p.Acceleration*p.RampTime*p.RampTime + p.PeakVelocity*(boundary-p.RampTime)
	test.That(t, p.Position(boundary), test.ShouldAlmostEqual, cruise)
}

func TestProfileRederivedShortRamp(t *testing.T) {
	// a tiny move stretched over a long segment needs a ramp many orders below the duration
	p, clamped := synchronizedProfile(1e-6, 100, 1e-12, 1, 1)
	test.That(t, clamped, test.ShouldBeFalse)
	test.That(t, p.RampTime, test.ShouldAlmostEqual, 1e-8, 1e-15)
	test.That(t, p.Acceleration, test.ShouldBeLessThanOrEqualTo, 1.0)
	test.That(t, p.Acceleration, test.ShouldAlmostEqual, 1, 1e-9)
	test.That(t, p.WithinLimits(1, 1, 1e-9), test.ShouldBeTrue)
	test.That(t, p.Position(100), test.ShouldEqual, 1e-6)

	logger, logs := logging.NewObservedTestLogger(t)
	seg := planSegment(
		0,
		referenceframe.FloatsToInputs([]float64{0, 0}),
		referenceframe.FloatsToInputs([]float64{100, 1e-6}),
		&JointLimits{Velocity: []float64{1, 1}, Acceleration: []float64{1e6, 1e-3}},
		logger,
	)
	test.That(t, seg.Duration, test.ShouldAlmostEqual, 100, 1e-3)
	test.That(t, logs.FilterMessage("clamped joint profile to its limits").Len(), test.ShouldEqual, 0)
}

func TestProfileRederivedAtVelocityBound(t *testing.T) {
	// the shared shape would peak at 0.4, above this joint's 0.35
	p, clamped := synchronizedProfile(2, 6, 1, 0.35, 10)
	test.That(t, clamped, test.ShouldBeFalse)
	test.That(t, p.WithinLimits(0.35, 10, 1e-9), test.ShouldBeTrue)
	test.That(t, p.Duration, test.ShouldEqual, 6.0)
	test.That(t, p.Position(6), test.ShouldEqual, 2.0)
	test.That(t, p.Position(3), test.ShouldAlmostEqual, 1, 1e-9)
}

func TestProfileClampsImpossibleDuration(t *testing.T) {
	// 1.9s is shorter than the 2s this joint needs; it is clamped rather than rejected
	p, clamped := synchronizedProfile(1, 1.9, 0.95, 1, 1)
	test.That(t, clamped, test.ShouldBeTrue)
	test.That(t, p.Acceleration, test.ShouldEqual, 1.0)
	test.That(t, p.PeakVelocity, test.ShouldBeLessThanOrEqualTo, 1.0)
	test.That(t, p.RampTime, test.ShouldAlmostEqual, 0.95)
	test.That(t, p.Position(1.9), test.ShouldEqual, 1.0)
}

func TestProfileZeroDisplacement(t *testing.T) {
	p, clamped := synchronizedProfile(0, 3, 1, 1, 1)
	test.That(t, clamped, test.ShouldBeFalse)
	test.That(t, p.CruiseTime, test.ShouldEqual, 3.0)
	for _, tm := range []float64{0, 0.5, 1.5, 3} {
		test.That(t, p.Position(tm), test.ShouldEqual, 0.0)
		test.That(t, p.Velocity(tm), test.ShouldEqual, 0.0)
		test.That(t, p.AccelerationAt(tm), test.ShouldEqual, 0.0)
	}

	p, _ = synchronizedProfile(0, 0, 0, 1, 1)
	test.That(t, p.Duration, test.ShouldEqual, 0.0)
	test.That(t, p.Velocity(0), test.ShouldEqual, 0.0)
}

func TestProfileIntegratesToDisplacement(t *testing.T) {
	p, _ := synchronizedProfile(2.3, 4, 1.2, 2, 2)
	// trapezoid rule over the velocity law
	const steps = 20000
	dt := p.Duration / steps
	sum := 0.
	for i := 0; i < steps; i++ {
		sum += (p.Velocity(float64(i)*dt) + p.Velocity(float64(i+1)*dt)) / 2 * dt
	}
	test.That(t, sum, test.ShouldAlmostEqual, 2.3, 1e-6)
}
