// Package trajectory time-parameterizes joint-space paths under per-joint velocity and acceleration
// limits.
//
// A path of waypoints is filtered so no two retained waypoints sit closer than a minimum separation,
// then every consecutive pair becomes a Segment. Each segment lasts as long as its slowest joint
// needs; the remaining joints are slowed to finish with it. Joints come to rest at every waypoint.
// The resulting Trajectory is immutable and may be queried from any number of goroutines.
package trajectory

import (
	"fmt"
	"math"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hobbyjobs/arm-navigation/logging"
	"github.com/hobbyjobs/arm-navigation/referenceframe"
	"github.com/hobbyjobs/arm-navigation/utils"
)

// Trajectory is a sequence of timed segments sharing one time base. The zero time is the first
// retained waypoint and Duration is the last.
type Trajectory struct {
	dof        int
	segments   []Segment
	startTimes []float64
	duration   float64
	limits     *JointLimits
}

// New builds a trajectory through path. limits holds one entry per joint; unset bounds take their
// defaults. Waypoints closer than minSeparation to the previously retained waypoint are dropped,
// except for the first and last. No trajectory is returned on error.
func New(
	path [][]referenceframe.Input,
	limits []Limit,
	minSeparation float64,
	logger logging.Logger,
) (*Trajectory, error) {
	if logger == nil {
		logger = logging.NewBlankLogger("trajectory")
	}
	if len(path) < 2 {
		return nil, NewInsufficientPathError(len(path))
	}
	if math.IsNaN(minSeparation) || minSeparation < 0 {
		return nil, NewInvalidSeparationError(minSeparation)
	}
	dof := len(path[0])
	if dof == 0 {
		return nil, NewNoJointsError()
	}
	for _, waypoint := range path {
		if len(waypoint) != dof {
			return nil, referenceframe.NewIncorrectDoFError(len(waypoint), dof)
		}
	}
	resolved, err := ResolveLimits(limits, dof)
	if err != nil {
		return nil, err
	}

	retained := Deduplicate(path, minSeparation)
	if len(retained) < 2 {
		return nil, NewInsufficientPathError(len(retained))
	}

	traj := &Trajectory{
		dof:        dof,
		segments:   make([]Segment, 0, len(retained)-1),
		startTimes: make([]float64, 0, len(retained)-1),
		limits:     resolved,
	}
	for i := 0; i < len(retained)-1; i++ {
		seg := planSegment(i, retained[i], retained[i+1], resolved, logger)
		seg.StartTime = traj.duration
		traj.segments = append(traj.segments, seg)
		traj.startTimes = append(traj.startTimes, seg.StartTime)
		traj.duration = seg.StartTime + seg.Duration
	}

	logger.Debugw("built trajectory",
		"waypoints", len(path),
		"retained", len(retained),
		"joints", dof,
		"duration", traj.duration,
	)
	return traj, nil
}

// Duration returns the total time of the trajectory in seconds.
func (traj *Trajectory) Duration() float64 {
	return traj.duration
}

// DoF returns the number of joints.
func (traj *Trajectory) DoF() int {
	return traj.dof
}

// NumSegments returns the number of segments, one less than the number of retained waypoints.
func (traj *Trajectory) NumSegments() int {
	return len(traj.segments)
}

// Segments returns a copy of the segments.
func (traj *Trajectory) Segments() []Segment {
	segs := make([]Segment, 0, len(traj.segments))
	for _, seg := range traj.segments {
		segs = append(segs, seg.clone())
	}
	return segs
}

// SegmentStartTimes returns the time at which each segment begins.
func (traj *Trajectory) SegmentStartTimes() []float64 {
	return append([]float64(nil), traj.startTimes...)
}

// Waypoints returns the retained waypoints the trajectory passes through, in order.
func (traj *Trajectory) Waypoints() [][]float64 {
	waypoints := make([][]float64, 0, len(traj.segments)+1)
	for _, seg := range traj.segments {
		waypoints = append(waypoints, append([]float64(nil), seg.Start...))
	}
	last := traj.segments[len(traj.segments)-1]
	return append(waypoints, append([]float64(nil), last.End...))
}

// Limits returns the resolved per-joint limits the trajectory was built with.
func (traj *Trajectory) Limits() JointLimits {
	return JointLimits{
		Velocity:     append([]float64(nil), traj.limits.Velocity...),
		Acceleration: append([]float64(nil), traj.limits.Acceleration...),
	}
}

// locate returns the segment owning time t and the time local to it. t is clamped to
// [0, Duration]. Segments own [start, end) except the last, which also owns its end.
func (traj *Trajectory) locate(t float64) (*Segment, float64) {
	if math.IsNaN(t) {
		t = 0
	}
	if t >= traj.duration {
		seg := &traj.segments[len(traj.segments)-1]
		return seg, seg.Duration
	}
	t = utils.Clamp(t, 0, traj.duration)
	idx := sort.Search(len(traj.startTimes), func(i int) bool {
		return traj.startTimes[i] > t
	}) - 1
	if idx < 0 {
		idx = 0
	}
	seg := &traj.segments[idx]
	return seg, t - seg.StartTime
}

// PositionAt returns the joint positions at time t. Times outside [0, Duration] are clamped.
func (traj *Trajectory) PositionAt(t float64) []float64 {
	seg, local := traj.locate(t)
	return seg.positionAt(local)
}

// VelocityAt returns the joint velocities at time t. Times outside [0, Duration] are clamped.
func (traj *Trajectory) VelocityAt(t float64) []float64 {
	seg, local := traj.locate(t)
	return seg.velocityAt(local)
}

// AccelerationAt returns the joint accelerations at time t. Acceleration is piecewise constant
// and is reported from the phase starting at t.
func (traj *Trajectory) AccelerationAt(t float64) []float64 {
	seg, local := traj.locate(t)
	return seg.accelerationAt(local)
}

// String returns a human-readable table of the segments, suitable for debugging.
func (traj *Trajectory) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Start", "Duration", "Start Position", "End Position", "Peak Velocity"})
	for _, seg := range traj.segments {
		t.AppendRow([]interface{}{
			fmt.Sprintf("%d", seg.Index),
			fmt.Sprintf("%.4f", seg.StartTime),
			fmt.Sprintf("%.4f", seg.Duration),
			fmt.Sprintf("%.4v", seg.Start),
			fmt.Sprintf("%.4v", seg.End),
			fmt.Sprintf("%.4f", seg.PeakVelocity()),
		})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%.4f", traj.duration), "", "", ""})
	return t.Render()
}
