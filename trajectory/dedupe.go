package trajectory

import (
	"github.com/hobbyjobs/arm-navigation/referenceframe"
)

// DefaultMinSeparation is the smallest joint-space distance kept between consecutive waypoints when
// callers have no preference.
const DefaultMinSeparation = 0.03

// Deduplicate returns the waypoints of path with interior points closer than minSeparation to the
// previously retained point removed. The first and last waypoints are always retained. The input is
// not modified; retained waypoints are copied.
func Deduplicate(path [][]referenceframe.Input, minSeparation float64) [][]referenceframe.Input {
	if len(path) == 0 {
		return nil
	}
	retained := make([][]referenceframe.Input, 0, len(path))
	retained = append(retained, copyInputs(path[0]))
	for i := 1; i < len(path)-1; i++ {
		if referenceframe.InputsL2Distance(retained[len(retained)-1], path[i]) < minSeparation {
			continue
		}
		retained = append(retained, copyInputs(path[i]))
	}
	if len(path) > 1 {
		retained = append(retained, copyInputs(path[len(path)-1]))
	}
	return retained
}

func copyInputs(inputs []referenceframe.Input) []referenceframe.Input {
	return append([]referenceframe.Input(nil), inputs...)
}
