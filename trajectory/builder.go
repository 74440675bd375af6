package trajectory

import (
	"github.com/hobbyjobs/arm-navigation/logging"
	"github.com/hobbyjobs/arm-navigation/referenceframe"
)

// Builder turns a path and its joint limits into a timed trajectory. Adapters that receive paths
// from elsewhere depend on this rather than on a particular construction.
type Builder interface {
	Build(path [][]referenceframe.Input, limits []Limit, minSeparation float64) (*Trajectory, error)
}

// ParabolicLinearBuilder builds rest-to-rest trajectories of trapezoidal velocity segments.
type ParabolicLinearBuilder struct {
	logger logging.Logger
}

// NewParabolicLinearBuilder returns a Builder that logs to logger.
func NewParabolicLinearBuilder(logger logging.Logger) *ParabolicLinearBuilder {
	return &ParabolicLinearBuilder{logger: logger}
}

// Build implements Builder.
func (b *ParabolicLinearBuilder) Build(
	path [][]referenceframe.Input,
	limits []Limit,
	minSeparation float64,
) (*Trajectory, error) {
	return New(path, limits, minSeparation, b.logger)
}
