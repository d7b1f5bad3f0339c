package film

import (
	"testing"

	"go.viam.com/test"

	"github.com/df07/go-glimpse/pkg/core"
)

func TestFilmUntouchedPixelIsZero(t *testing.T) {
	f := New(4, 3)
	test.That(t, f.Sample(1, 1), test.ShouldResemble, core.Vec3{})
	test.That(t, f.SampleCount(1, 1), test.ShouldEqual, 0)
	test.That(t, f.Variance(1, 1), test.ShouldResemble, core.Vec3{})
}

func TestFilmAccumulation(t *testing.T) {
	f := New(4, 3)
	v1 := core.NewVec3(0.2, 0.4, 0.6)
	v2 := core.NewVec3(0.6, 0.0, 1.0)

	f.AddSample(2, 1, v1)
	test.That(t, f.Sample(2, 1), test.ShouldResemble, v1)

	f.AddSample(2, 1, v2)
	mean := f.Sample(2, 1)
	test.That(t, mean.X, test.ShouldAlmostEqual, 0.4, 1e-12)
	test.That(t, mean.Y, test.ShouldAlmostEqual, 0.2, 1e-12)
	test.That(t, mean.Z, test.ShouldAlmostEqual, 0.8, 1e-12)
	test.That(t, f.SampleCount(2, 1), test.ShouldEqual, 2)

	sum := f.AccumulatedSample(2, 1)
	test.That(t, sum.X, test.ShouldAlmostEqual, 0.8, 1e-12)

	// Neighbours stay untouched
	test.That(t, f.SampleCount(1, 1), test.ShouldEqual, 0)
}

func TestFilmVariance(t *testing.T) {
	f := New(1, 1)
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		f.AddSample(0, 0, core.NewVec3(v, 1, -v))
	}

	variance := f.Variance(0, 0)
	// Sample variance of the data set is 32/7
	test.That(t, variance.X, test.ShouldAlmostEqual, 32.0/7.0, 1e-9)
	test.That(t, variance.Y, test.ShouldAlmostEqual, 0.0, 1e-12)
	test.That(t, variance.Z, test.ShouldAlmostEqual, 32.0/7.0, 1e-9)

	f.Initialize(1, 1)
	f.AddSample(0, 0, core.NewVec3(3, 3, 3))
	test.That(t, f.Variance(0, 0), test.ShouldResemble, core.Vec3{})
}

func TestFilmOutOfRange(t *testing.T) {
	f := New(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		f.AddSample(p[0], p[1], core.NewVec3(1, 1, 1))
		test.That(t, f.Sample(p[0], p[1]), test.ShouldResemble, core.Vec3{})
		test.That(t, f.SampleCount(p[0], p[1]), test.ShouldEqual, 0)
	}
	test.That(t, f.AverageSampleCount(), test.ShouldEqual, 0)
}

func TestFilmAverageSampleCount(t *testing.T) {
	f := New(2, 2)
	test.That(t, f.AverageSampleCount(), test.ShouldEqual, 0)

	for i := 0; i < 3; i++ {
		f.AddSample(0, 0, core.NewVec3(1, 1, 1))
	}
	f.AddSample(1, 1, core.NewVec3(1, 1, 1))
	f.AddSample(1, 0, core.NewVec3(1, 1, 1))
	f.AddSample(0, 1, core.NewVec3(1, 1, 1))

	// 6 samples over 4 pixels rounds down
	test.That(t, f.AverageSampleCount(), test.ShouldEqual, 1)

	f.Initialize(3, 1)
	test.That(t, f.Width(), test.ShouldEqual, 3)
	test.That(t, f.Height(), test.ShouldEqual, 1)
	test.That(t, f.SampleCount(0, 0), test.ShouldEqual, 0)
}
