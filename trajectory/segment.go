package trajectory

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hobbyjobs/arm-navigation/logging"
	"github.com/hobbyjobs/arm-navigation/referenceframe"
)

// Segment is the timed motion between two consecutive retained waypoints. Every joint's profile
// spans the same Duration, so all joints leave Start and arrive at End together.
type Segment struct {
	Index        int
	StartTime    float64
	Duration     float64
	Start        []float64
	End          []float64
	Displacement []float64
	Profiles     []Profile
}

// planSegment times the move from start to end. The segment duration is the slowest joint's minimum
// time; every other joint is slowed to match it.
func planSegment(
	index int,
	start, end []referenceframe.Input,
	limits *JointLimits,
	logger logging.Logger,
) Segment {
	displacement := referenceframe.InputsDisplacement(start, end)
	seg := Segment{
		Index:        index,
		Start:        referenceframe.InputsToFloats(start),
		End:          referenceframe.InputsToFloats(end),
		Displacement: displacement,
		Profiles:     make([]Profile, len(displacement)),
	}

	jointTimes := make([]float64, len(displacement))
	for j, d := range displacement {
		jointTimes[j] = MinimumTime(d, limits.Velocity[j], limits.Acceleration[j])
	}
	slowest := floats.MaxIdx(jointTimes)
	seg.Duration = jointTimes[slowest]

	if seg.Duration == 0 {
		for j, d := range displacement {
			seg.Profiles[j] = Profile{Displacement: d}
		}
		return seg
	}

	sharedRamp := minimumTimeRamp(displacement[slowest], limits.Velocity[slowest], limits.Acceleration[slowest])
	for j, d := range displacement {
		profile, clamped := synchronizedProfile(d, seg.Duration, sharedRamp, limits.Velocity[j], limits.Acceleration[j])
		if clamped {
			logger.Warnw("clamped joint profile to its limits",
				"segment", index,
				"joint", j,
				"displacement", d,
				"duration", seg.Duration,
				"acceleration", profile.Acceleration,
				"peak_velocity", profile.PeakVelocity,
			)
		}
		seg.Profiles[j] = profile
	}
	return seg
}

// positionAt returns joint positions at local time t within the segment.
func (s *Segment) positionAt(t float64) []float64 {
	if t >= s.Duration {
		return append([]float64(nil), s.End...)
	}
	pos := make([]float64, len(s.Start))
	for j, p := range s.Profiles {
		pos[j] = s.Start[j] + p.Position(t)
	}
	return pos
}

// velocityAt returns joint velocities at local time t within the segment.
func (s *Segment) velocityAt(t float64) []float64 {
	vel := make([]float64, len(s.Profiles))
	for j, p := range s.Profiles {
		vel[j] = p.Velocity(t)
	}
	return vel
}

func (s *Segment) accelerationAt(t float64) []float64 {
	acc := make([]float64, len(s.Profiles))
	for j, p := range s.Profiles {
		acc[j] = p.AccelerationAt(t)
	}
	return acc
}

// EndTime is the time the segment finishes, measured from the start of the trajectory.
func (s *Segment) EndTime() float64 {
	return s.StartTime + s.Duration
}

// PeakVelocity returns the largest joint speed reached in the segment.
func (s *Segment) PeakVelocity() float64 {
	peak := 0.
	for _, p := range s.Profiles {
		peak = math.Max(peak, p.PeakVelocity)
	}
	return peak
}

func (s Segment) clone() Segment {
	s.Start = append([]float64(nil), s.Start...)
	s.End = append([]float64(nil), s.End...)
	s.Displacement = append([]float64(nil), s.Displacement...)
	s.Profiles = append([]Profile(nil), s.Profiles...)
	return s
}
