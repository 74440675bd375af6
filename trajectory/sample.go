package trajectory

import (
	"math"

	"github.com/hobbyjobs/arm-navigation/utils"
)

// DefaultSampleIntervals is the number of equal intervals a trajectory is resampled into when
// callers have no preference.
const DefaultSampleIntervals = 100

// MaxSampleIntervals bounds how many intervals a single resample may produce.
const MaxSampleIntervals = 1_000_000

// Sample is the state of every joint at one instant of a trajectory.
type Sample struct {
	Time       float64
	Positions  []float64
	Velocities []float64
}

func (traj *Trajectory) sampleAt(t float64) Sample {
	return Sample{Time: t, Positions: traj.PositionAt(t), Velocities: traj.VelocityAt(t)}
}

// Sample resamples the trajectory into numIntervals equal intervals, returning numIntervals+1
// samples from time 0 to Duration inclusive.
func (traj *Trajectory) Sample(numIntervals int) ([]Sample, error) {
	if numIntervals < 1 {
		return nil, NewInvalidSampleCountError(numIntervals)
	}
	if numIntervals > MaxSampleIntervals {
		return nil, NewTooManySamplesError(float64(numIntervals))
	}
	step := traj.duration / float64(numIntervals)
	samples := make([]Sample, 0, numIntervals+1)
	for i := 0; i <= numIntervals; i++ {
		t := step * float64(i)
		if i == numIntervals {
			t = traj.duration
		}
		samples = append(samples, traj.sampleAt(t))
	}
	return samples, nil
}

// SampleEvery resamples the trajectory every period seconds. The final sample is always taken at
// exactly Duration, so the last interval may be shorter than period.
func (traj *Trajectory) SampleEvery(period float64) ([]Sample, error) {
	if !utils.IsFinitePositive(period) {
		return nil, NewInvalidSamplePeriodError(period)
	}
	intervals := math.Ceil(traj.duration / period)
	if !(intervals <= MaxSampleIntervals) {
		return nil, NewTooManySamplesError(intervals)
	}
	// skip grid points that only differ from Duration by rounding
	slack := period * 1e-9
	samples := make([]Sample, 0, int(intervals)+2)
	for i := 0; ; i++ {
		t := period * float64(i)
		if t >= traj.duration-slack {
			break
		}
		samples = append(samples, traj.sampleAt(t))
	}
	return append(samples, traj.sampleAt(traj.duration)), nil
}
