package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, DegToRad(-90), test.ShouldAlmostEqual, -math.Pi/2)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1, 1.0001, 1e-3), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1, 1.01, 1e-3), test.ShouldBeFalse)

	test.That(t, Float64RelativeAlmostEqual(1e6, 1e6+0.5, 1e-6), test.ShouldBeTrue)
	test.That(t, Float64RelativeAlmostEqual(1e6, 1e6+5, 1e-6), test.ShouldBeFalse)
	test.That(t, Float64RelativeAlmostEqual(0, 1e-9, 1e-6), test.ShouldBeTrue)
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(-1, 0, 2), test.ShouldEqual, 0.0)
	test.That(t, Clamp(3, 0, 2), test.ShouldEqual, 2.0)
	test.That(t, Clamp(1.5, 0, 2), test.ShouldEqual, 1.5)
}

func TestIsFinitePositive(t *testing.T) {
	test.That(t, IsFinitePositive(0.1), test.ShouldBeTrue)
	test.That(t, IsFinitePositive(0), test.ShouldBeFalse)
	test.That(t, IsFinitePositive(-2), test.ShouldBeFalse)
	test.That(t, IsFinitePositive(math.Inf(1)), test.ShouldBeFalse)
	test.That(t, IsFinitePositive(math.NaN()), test.ShouldBeFalse)
}
