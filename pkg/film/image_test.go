package film

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/df07/go-glimpse/pkg/core"
)

func TestLinearToByte(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  byte
	}{
		{"zero", 0, 0},
		{"negative", -1, 0},
		{"NaN", math.NaN(), 0},
		{"quarter is half after gamma", 0.25, 128},
		{"one clamps below 256", 1, 255},
		{"overexposed", 42, 255},
		{"positive infinity", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.That(t, LinearToByte(tt.input), test.ShouldEqual, tt.want)
		})
	}
}

func TestImageSetAndAt(t *testing.T) {
	img := NewImage(3, 2)
	test.That(t, len(img.Data()), test.ShouldEqual, 18)

	img.Set(2, 1, core.NewVec3(0.25, 1, math.NaN()))
	r, g, b := img.At(2, 1)
	test.That(t, r, test.ShouldEqual, byte(128))
	test.That(t, g, test.ShouldEqual, byte(255))
	test.That(t, b, test.ShouldEqual, byte(0))

	// Last pixel occupies the last three bytes
	test.That(t, img.Data()[15], test.ShouldEqual, byte(128))
}

func TestImageOutOfRange(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(-1, 0, core.NewVec3(1, 1, 1))
	img.Set(2, 0, core.NewVec3(1, 1, 1))
	img.Set(0, 2, core.NewVec3(1, 1, 1))

	for _, v := range img.Data() {
		test.That(t, v, test.ShouldEqual, byte(0))
	}
	r, g, b := img.At(5, 5)
	test.That(t, []byte{r, g, b}, test.ShouldResemble, []byte{0, 0, 0})
}
