package trajectory

import (
	"math"

	"github.com/hobbyjobs/arm-navigation/utils"
)

// boundTolerance is the relative slack allowed before a re-derived bound counts as exceeded.
const boundTolerance = 1e-9

// Profile is the trapezoidal velocity law followed by one joint over one segment: a constant
// acceleration ramp, an optional cruise at PeakVelocity, and a symmetric deceleration ramp.
// Acceleration and PeakVelocity are magnitudes; the sign of Displacement gives the direction.
type Profile struct {
	Displacement float64
	Duration     float64
	RampTime     float64
	CruiseTime   float64
	Acceleration float64
	PeakVelocity float64
}

// MinimumTime returns the shortest time in which a joint starting and ending at rest can cover
// distance without exceeding maxVelocity or maxAcceleration.
func MinimumTime(distance, maxVelocity, maxAcceleration float64) float64 {
	distance = math.Abs(distance)
	if distance == 0 {
		return 0
	}
	peak := math.Sqrt(distance * maxAcceleration)
	if peak <= maxVelocity {
		// triangular, the joint never reaches its velocity bound
		return 2 * peak / maxAcceleration
	}
	return maxVelocity/maxAcceleration + distance/maxVelocity
}

// minimumTimeRamp returns the ramp time of the profile MinimumTime describes.
func minimumTimeRamp(distance, maxVelocity, maxAcceleration float64) float64 {
	distance = math.Abs(distance)
	peak := math.Sqrt(distance * maxAcceleration)
	if peak <= maxVelocity {
		return peak / maxAcceleration
	}
	return maxVelocity / maxAcceleration
}

// rampFits reports whether a symmetric profile with the given ramp covers distance in duration
// within the bounds.
func rampFits(distance, duration, ramp, maxVelocity, maxAcceleration float64) bool {
	if ramp <= 0 || ramp > duration/2 {
		return false
	}
	accel := distance / (ramp * (duration - ramp))
	return accel <= maxAcceleration*(1+boundTolerance) && accel*ramp <= maxVelocity*(1+boundTolerance)
}

// synchronizedProfile builds the profile that covers displacement in exactly duration. sharedRamp is
// the ramp of the slowest joint in the segment; using it keeps every joint proportional to the others.
// When that shape would break this joint's bounds the ramp is re-derived at maxAcceleration.
// The returned bool is true when a bound had to be clamped by more than rounding error.
func synchronizedProfile(displacement, duration, sharedRamp, maxVelocity, maxAcceleration float64) (Profile, bool) {
	distance := math.Abs(displacement)
	if distance == 0 || duration <= 0 {
		return Profile{Displacement: displacement, Duration: duration, CruiseTime: math.Max(duration, 0)}, false
	}

	clamped := false
	ramp := sharedRamp
	if !rampFits(distance, duration, ramp, maxVelocity, maxAcceleration) {
		// a*tr*(T-tr) = d with a at its bound
		disc := duration*duration - 4*distance/maxAcceleration
		if disc < 0 {
			clamped = disc < -boundTolerance*duration*duration
			disc = 0
		}
		// smaller root of tr^2 - T*tr + d/a, written to avoid cancellation when d/a << T^2
		ramp = 2 * (distance / maxAcceleration) / (duration + math.Sqrt(disc))
		if maxAcceleration*ramp > maxVelocity*(1+boundTolerance) {
			ramp = duration - distance/maxVelocity
		}
	}
	if ramp <= 0 || ramp > duration/2 {
		clamped = clamped || ramp <= 0 || ramp > duration/2*(1+boundTolerance)
		ramp = duration / 2
	}

	accel := distance / (ramp * (duration - ramp))
	if accel > maxAcceleration {
		clamped = clamped || accel > maxAcceleration*(1+boundTolerance)
		accel = maxAcceleration
	}
	peak := accel * ramp
	if peak > maxVelocity {
		clamped = clamped || peak > maxVelocity*(1+boundTolerance)
		peak = maxVelocity
	}

	return Profile{
		Displacement: displacement,
		Duration:     duration,
		RampTime:     ramp,
		CruiseTime:   duration - 2*ramp,
		Acceleration: accel,
		PeakVelocity: peak,
	}, clamped
}

func (p Profile) direction() float64 {
	if p.Displacement < 0 {
		return -1
	}
	return 1
}

// Position returns the distance travelled from the segment start at local time t.
// t is clamped to [0, Duration].
func (p Profile) Position(t float64) float64 {
	if p.Displacement == 0 {
		return 0
	}
	if t >= p.Duration {
		return p.Displacement
	}
	t = math.Max(t, 0)
	dir := p.direction()
	switch {
	case t < p.RampTime:
		return dir * 0.5 * p.Acceleration * t * t
	case t < p.Duration-p.RampTime:
		return dir * (0.5*p.Acceleration*p.RampTime*p.RampTime + p.PeakVelocity*(t-p.RampTime))
	default:
		remaining := p.Duration - t
		return p.Displacement - dir*0.5*p.Acceleration*remaining*remaining
	}
}

// Velocity returns the signed joint velocity at local time t. t is clamped to [0, Duration].
func (p Profile) Velocity(t float64) float64 {
	if p.Displacement == 0 || t <= 0 || t >= p.Duration {
		return 0
	}
	dir := p.direction()
	switch {
	case t < p.RampTime:
		return dir * p.Acceleration * t
	case t < p.Duration-p.RampTime:
		return dir * p.PeakVelocity
	default:
		return dir * p.Acceleration * (p.Duration - t)
	}
}

// AccelerationAt returns the signed joint acceleration at local time t.
func (p Profile) AccelerationAt(t float64) float64 {
	if p.Displacement == 0 || t < 0 || t >= p.Duration {
		return 0
	}
	dir := p.direction()
	switch {
	case t < p.RampTime:
		return dir * p.Acceleration
	case t < p.Duration-p.RampTime:
		return 0
	default:
		return -dir * p.Acceleration
	}
}

// WithinLimits reports whether the profile respects the given bounds up to a relative tolerance.
func (p Profile) WithinLimits(maxVelocity, maxAcceleration, tolerance float64) bool {
	return p.PeakVelocity <= maxVelocity*(1+tolerance) &&
		p.Acceleration <= maxAcceleration*(1+tolerance) &&
		p.RampTime >= 0 && p.CruiseTime >= -tolerance*math.Max(1, p.Duration) &&
		utils.Float64RelativeAlmostEqual(2*p.RampTime+p.CruiseTime, p.Duration, tolerance)
}
