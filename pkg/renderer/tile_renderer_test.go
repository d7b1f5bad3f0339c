package renderer

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/atomic"

	"github.com/df07/go-glimpse/pkg/camera"
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/film"
	"github.com/df07/go-glimpse/pkg/geometry"
	"github.com/df07/go-glimpse/pkg/integrator"
)

func TestNewBands(t *testing.T) {
	testCases := []struct {
		name    string
		height  int
		workers int
		want    []Band
	}{
		{"even split", 9, 3, []Band{{0, 0, 3}, {1, 3, 6}, {2, 6, 9}}},
		{"remainder goes last", 10, 3, []Band{{0, 0, 3}, {1, 3, 6}, {2, 6, 10}}},
		{"more workers than rows", 2, 8, []Band{{0, 0, 1}, {1, 1, 2}}},
		{"zero workers", 4, 0, []Band{{0, 0, 4}}},
		{"empty image", 0, 4, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewBands(tc.height, tc.workers)
			if len(got) != len(tc.want) {
				t.Fatalf("Expected %d bands, got %d: %v", len(tc.want), len(got), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Band %d: expected %v, got %v", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestBandsCoverEveryRowOnce(t *testing.T) {
	for height := 1; height < 40; height++ {
		for workers := 1; workers < 12; workers++ {
			covered := make([]int, height)
			for _, band := range NewBands(height, workers) {
				if band.Rows() <= 0 {
					t.Fatalf("Empty band %v for height %d workers %d", band, height, workers)
				}
				for row := band.StartRow; row < band.EndRow; row++ {
					covered[row]++
				}
			}
			for row, n := range covered {
				if n != 1 {
					t.Fatalf("Row %d covered %d times (height %d workers %d)", row, n, height, workers)
				}
			}
		}
	}
}

func TestWorkerPoolRecoversPanics(t *testing.T) {
	pool := NewWorkerPool(context.Background())
	pool.Go("steady", func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	pool.Go("faulty", func(ctx context.Context) error {
		panic("boom")
	})

	err := pool.Wait()
	if err == nil {
		t.Fatal("Expected the panic to surface as an error")
	}
	if !strings.Contains(err.Error(), "faulty panicked: boom") {
		t.Errorf("Unexpected error %q", err)
	}
}

func TestRenderCellTouchesOnlyItsBand(t *testing.T) {
	cam := camera.DefaultConfig()
	cam.ImageWidth = 8
	cam.AspectRatio = 1
	cam.SamplesPerPixel = 4
	frame := camera.NewFrame(cam)

	var progress atomic.Int64
	job := &bandJob{
		frame:      frame,
		env:        integrator.Environment{World: geometry.NewHittableList(), Background: core.NewVec3(1, 1, 1)},
		integrator: integrator.NewPathTracingIntegrator(2),
		film:       film.New(frame.ImageWidth, frame.ImageHeight),
		image:      film.NewImage(frame.ImageWidth, frame.ImageHeight),
		progress:   &progress,
	}

	band := Band{Index: 1, StartRow: 2, EndRow: 5}
	n := job.renderCell(band, 1, 0, newBandSampler(1, band.Index))

	if n != int64(band.Rows()*frame.ImageWidth) {
		t.Errorf("Expected %d samples, got %d", band.Rows()*frame.ImageWidth, n)
	}
	if progress.Load() != n {
		t.Errorf("Expected progress %d, got %d", n, progress.Load())
	}
	for y := 0; y < frame.ImageHeight; y++ {
		want := 0
		if y >= band.StartRow && y < band.EndRow {
			want = 1
		}
		for x := 0; x < frame.ImageWidth; x++ {
			if got := job.film.SampleCount(x, y); got != want {
				t.Errorf("Pixel (%d,%d): expected %d samples, got %d", x, y, want, got)
			}
			if r, _, _ := job.image.At(x, y); (r == 255) != (want == 1) {
				t.Errorf("Pixel (%d,%d): image not in sync with film", x, y)
			}
		}
	}
}
