// Package config defines the job files that describe a trajectory to generate and converts them
// into inputs for the trajectory package.
package config

import (
	"fmt"
	"math"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"github.com/hobbyjobs/arm-navigation/logging"
	"github.com/hobbyjobs/arm-navigation/referenceframe"
	"github.com/hobbyjobs/arm-navigation/trajectory"
	"github.com/hobbyjobs/arm-navigation/utils"
)

// A JointConfig names one joint and optionally bounds its motion. Unset bounds take the trajectory
// defaults.
type JointConfig struct {
	Name            string   `json:"name" jsonschema:"description=joint name used in reports"`
	MaxVelocity     *float64 `json:"max_velocity,omitempty" jsonschema:"minimum=0"`
	MaxAcceleration *float64 `json:"max_acceleration,omitempty" jsonschema:"minimum=0"`
}

// Validate ensures the joint is named and its bounds, if set, are positive.
func (conf *JointConfig) Validate(path string) error {
	var err error
	if conf.Name == "" {
		err = multierr.Append(err, goutils.NewConfigValidationFieldRequiredError(path, "name"))
	}
	if conf.MaxVelocity != nil && !utils.IsFinitePositive(*conf.MaxVelocity) {
		err = multierr.Append(err, goutils.NewConfigValidationError(path,
			errors.Errorf("max_velocity must be positive, got %v", *conf.MaxVelocity)))
	}
	if conf.MaxAcceleration != nil && !utils.IsFinitePositive(*conf.MaxAcceleration) {
		err = multierr.Append(err, goutils.NewConfigValidationError(path,
			errors.Errorf("max_acceleration must be positive, got %v", *conf.MaxAcceleration)))
	}
	return err
}

// A Job describes a path through joint space, the limits of every joint, and how the resulting
// trajectory should be sampled. When Degrees is set, waypoints, limits and the minimum separation
// are given in degrees and converted to radians.
type Job struct {
	Joints        []JointConfig `json:"joints"`
	Waypoints     [][]float64   `json:"waypoints"`
	MinSeparation *float64      `json:"min_separation,omitempty" jsonschema:"minimum=0"`
	Samples       int           `json:"samples,omitempty" jsonschema:"minimum=1"`
	Degrees       bool          `json:"degrees,omitempty"`
}

// Validate ensures all parts of the job are valid. Every problem found is returned, combined.
func (job *Job) Validate(path string) error {
	var err error
	if len(job.Joints) == 0 {
		err = multierr.Append(err, goutils.NewConfigValidationFieldRequiredError(path, "joints"))
	}
	seen := map[string]bool{}
	for idx, joint := range job.Joints {
		jointPath := fmt.Sprintf("%s.%s.%d", path, "joints", idx)
		err = multierr.Append(err, joint.Validate(jointPath))
		if joint.Name != "" && seen[joint.Name] {
			err = multierr.Append(err, goutils.NewConfigValidationError(jointPath,
				errors.Errorf("duplicate joint name %q", joint.Name)))
		}
		seen[joint.Name] = true
	}

	switch len(job.Waypoints) {
	case 0:
		err = multierr.Append(err, goutils.NewConfigValidationFieldRequiredError(path, "waypoints"))
	case 1:
		err = multierr.Append(err, goutils.NewConfigValidationError(path,
			trajectory.NewInsufficientPathError(len(job.Waypoints))))
	}
	for idx, waypoint := range job.Waypoints {
		if len(job.Joints) > 0 && len(waypoint) != len(job.Joints) {
			err = multierr.Append(err, goutils.NewConfigValidationError(
				fmt.Sprintf("%s.%s.%d", path, "waypoints", idx),
				referenceframe.NewIncorrectDoFError(len(waypoint), len(job.Joints))))
		}
		for _, value := range waypoint {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				err = multierr.Append(err, goutils.NewConfigValidationError(
					fmt.Sprintf("%s.%s.%d", path, "waypoints", idx),
					errors.Errorf("joint value %v is not a finite number", value)))
				break
			}
		}
	}

	if job.MinSeparation != nil && (math.IsNaN(*job.MinSeparation) || *job.MinSeparation < 0) {
		err = multierr.Append(err, goutils.NewConfigValidationError(path,
			trajectory.NewInvalidSeparationError(*job.MinSeparation)))
	}
	if job.Samples < 0 {
		err = multierr.Append(err, goutils.NewConfigValidationError(path,
			trajectory.NewInvalidSampleCountError(job.Samples)))
	}
	return err
}

// toRadians converts an angular quantity from the job's unit.
func (job *Job) toRadians(value float64) float64 {
	if job.Degrees {
		return utils.DegToRad(value)
	}
	return value
}

// JointNames returns the joint names in order.
func (job *Job) JointNames() []string {
	return lo.Map(job.Joints, func(joint JointConfig, _ int) string {
		return joint.Name
	})
}

// Limits returns the joint limits in radians, leaving unset bounds unset.
func (job *Job) Limits() []trajectory.Limit {
	return lo.Map(job.Joints, func(joint JointConfig, _ int) trajectory.Limit {
		var limit trajectory.Limit
		if joint.MaxVelocity != nil {
			limit.MaxVelocity = job.toRadians(*joint.MaxVelocity)
			limit.HasVelocityLimit = true
		}
		if joint.MaxAcceleration != nil {
			limit.MaxAcceleration = job.toRadians(*joint.MaxAcceleration)
			limit.HasAccelerationLimit = true
		}
		return limit
	})
}

// Path returns the waypoints in radians.
func (job *Job) Path() [][]referenceframe.Input {
	return lo.Map(job.Waypoints, func(waypoint []float64, _ int) []referenceframe.Input {
		if job.Degrees {
			return referenceframe.InputsFromDegrees(waypoint)
		}
		return referenceframe.FloatsToInputs(waypoint)
	})
}

// MinSeparationOrDefault returns the minimum waypoint separation in radians.
func (job *Job) MinSeparationOrDefault() float64 {
	if job.MinSeparation == nil {
		return trajectory.DefaultMinSeparation
	}
	return job.toRadians(*job.MinSeparation)
}

// SampleIntervals returns the number of intervals the trajectory should be sampled into.
func (job *Job) SampleIntervals() int {
	if job.Samples == 0 {
		return trajectory.DefaultSampleIntervals
	}
	return job.Samples
}

// Build constructs the trajectory the job describes.
func (job *Job) Build(logger logging.Logger) (*trajectory.Trajectory, error) {
	return trajectory.NewParabolicLinearBuilder(logger).Build(job.Path(), job.Limits(), job.MinSeparationOrDefault())
}

// Schema returns the JSON schema of a job file.
func Schema() *jsonschema.Schema {
	return jsonschema.Reflect(&Job{})
}
