// Package referenceframe defines the joint-space value types shared by the trajectory engine and its callers.
package referenceframe

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hobbyjobs/arm-navigation/utils"
)

// Input wraps the input to a single joint, e.g. a joint angle or a gantry position.
//   - revolute inputs should be in radians.
//   - prismatic inputs should be in meters.
type Input struct {
	Value float64
}

// FloatsToInputs wraps a slice of floats in Inputs.
func FloatsToInputs(floats []float64) []Input {
	inputs := make([]Input, len(floats))
	for i, f := range floats {
		inputs[i] = Input{f}
	}
	return inputs
}

// InputsToFloats unwraps Inputs to raw floats.
func InputsToFloats(inputs []Input) []float64 {
	floats := make([]float64, len(inputs))
	for i, f := range inputs {
		floats[i] = f.Value
	}
	return floats
}

// InputsFromDegrees converts a slice of degree values into radian Inputs.
func InputsFromDegrees(degrees []float64) []Input {
	inputs := make([]Input, len(degrees))
	for i, d := range degrees {
		inputs[i] = Input{utils.DegToRad(d)}
	}
	return inputs
}

// InputsL2Distance returns the two-norm (the sqrt of the sum of the squares) between two Input sets.
// Sets of different length are infinitely far apart.
func InputsL2Distance(from, to []Input) float64 {
	if len(from) != len(to) {
		return math.Inf(1)
	}
	diff := make([]float64, 0, len(from))
	for i, f := range from {
		diff = append(diff, f.Value-to[i].Value)
	}
	// 2 is the L value returning a standard L2 Normalization
	return floats.Norm(diff, 2)
}

// InputsDisplacement returns to - from per joint.
func InputsDisplacement(from, to []Input) []float64 {
	delta := InputsToFloats(to)
	floats.Sub(delta, InputsToFloats(from))
	return delta
}
