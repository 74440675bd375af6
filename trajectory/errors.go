package trajectory

import (
	"github.com/pkg/errors"
)

// NewLimitCountError is returned when the number of joint limits does not match the number of joints
// implied by the waypoints.
func NewLimitCountError(actual, expected int) error {
	return errors.Errorf("expected %d joint limits but got %d", expected, actual)
}

// NewInvalidLimitError is returned when a set velocity or acceleration bound is not a finite positive number.
func NewInvalidLimitError(joint int, kind string, value float64) error {
	return errors.Errorf("joint %d has invalid max %s %v, must be positive", joint, kind, value)
}

// NewInsufficientPathError is returned when fewer than two waypoints remain to build a trajectory from.
func NewInsufficientPathError(count int) error {
	return errors.Errorf("need at least 2 waypoints to build a trajectory but got %d", count)
}

// NewInvalidSeparationError is returned for a negative or non-numeric minimum waypoint separation.
func NewInvalidSeparationError(minSeparation float64) error {
	return errors.Errorf("minimum waypoint separation %v must be a non-negative number", minSeparation)
}

// NewNoJointsError is returned when the waypoints carry no joint values.
func NewNoJointsError() error {
	return errors.New("waypoints must have at least one joint")
}

// NewInvalidSampleCountError is returned when a trajectory is resampled into fewer than one interval.
func NewInvalidSampleCountError(numIntervals int) error {
	return errors.Errorf("cannot sample trajectory into %d intervals, need at least 1", numIntervals)
}

// NewInvalidSamplePeriodError is returned when a trajectory is resampled with a non-positive period.
func NewInvalidSamplePeriodError(period float64) error {
	return errors.Errorf("cannot sample trajectory every %v seconds, period must be positive", period)
}

// NewTooManySamplesError is returned when a resample would produce more than MaxSampleIntervals intervals.
func NewTooManySamplesError(intervals float64) error {
	return errors.Errorf("cannot sample trajectory into %v intervals, at most %d allowed", intervals, MaxSampleIntervals)
}
