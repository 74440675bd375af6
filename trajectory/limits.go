package trajectory

import (
	"github.com/hobbyjobs/arm-navigation/utils"
)

const (
	// DefaultMaxVelocity is used for any joint whose velocity limit is unset.
	DefaultMaxVelocity = 1.0
	// DefaultMaxAcceleration is used for any joint whose acceleration limit is unset.
	DefaultMaxAcceleration = 1.0
)

// Limit is the velocity and acceleration bound of a single joint as supplied by a caller.
// A bound whose Has flag is false is unset and will be replaced with its default.
type Limit struct {
	MaxVelocity          float64
	MaxAcceleration      float64
	HasVelocityLimit     bool
	HasAccelerationLimit bool
}

// NewLimit returns a Limit with both bounds set.
func NewLimit(maxVelocity, maxAcceleration float64) Limit {
	return Limit{
		MaxVelocity:          maxVelocity,
		MaxAcceleration:      maxAcceleration,
		HasVelocityLimit:     true,
		HasAccelerationLimit: true,
	}
}

// JointLimits is a fully-populated set of per-joint bounds, indexed by joint.
type JointLimits struct {
	Velocity     []float64
	Acceleration []float64
}

// DoF returns the number of joints the limits describe.
func (jl *JointLimits) DoF() int {
	return len(jl.Velocity)
}

// ResolveLimits substitutes defaults for unset bounds and checks that every bound is positive.
// dof is the number of joints implied by the waypoints.
func ResolveLimits(limits []Limit, dof int) (*JointLimits, error) {
	if len(limits) != dof {
		return nil, NewLimitCountError(len(limits), dof)
	}
	resolved := &JointLimits{
		Velocity:     make([]float64, dof),
		Acceleration: make([]float64, dof),
	}
	for i, limit := range limits {
		resolved.Velocity[i] = DefaultMaxVelocity
		if limit.HasVelocityLimit {
			if !utils.IsFinitePositive(limit.MaxVelocity) {
				return nil, NewInvalidLimitError(i, "velocity", limit.MaxVelocity)
			}
			resolved.Velocity[i] = limit.MaxVelocity
		}
		resolved.Acceleration[i] = DefaultMaxAcceleration
		if limit.HasAccelerationLimit {
			if !utils.IsFinitePositive(limit.MaxAcceleration) {
				return nil, NewInvalidLimitError(i, "acceleration", limit.MaxAcceleration)
			}
			resolved.Acceleration[i] = limit.MaxAcceleration
		}
	}
	return resolved, nil
}
