package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/film"
)

func TestComputeStats(t *testing.T) {
	f := film.New(2, 2)
	for i := 0; i < 3; i++ {
		f.AddSample(0, 0, core.NewVec3(1, 1, 1))
		f.AddSample(1, 0, core.NewVec3(1, 1, 1))
	}
	f.AddSample(0, 1, core.NewVec3(1, 1, 1))

	stats := computeStats(f, []int64{6, 1}, []int{3, 1})

	if stats.TotalPixels != 4 {
		t.Errorf("Expected 4 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 7 {
		t.Errorf("Expected 7 samples, got %d", stats.TotalSamples)
	}
	if math.Abs(stats.AverageSamples-1.75) > 1e-12 {
		t.Errorf("Expected average 1.75, got %f", stats.AverageSamples)
	}
	if stats.MinSamples != 0 {
		t.Errorf("Expected min 0 for the untouched pixel, got %d", stats.MinSamples)
	}
	if stats.MaxSamplesUsed != 3 {
		t.Errorf("Expected max 3, got %d", stats.MaxSamplesUsed)
	}
	if stats.Passes != 1 {
		t.Errorf("Expected the slowest band's 1 pass, got %d", stats.Passes)
	}
	if math.Abs(stats.BandSampleMean-3.5) > 1e-12 {
		t.Errorf("Expected band mean 3.5, got %f", stats.BandSampleMean)
	}
	// Sample standard deviation of {6, 1}
	if math.Abs(stats.BandSampleStd-math.Sqrt(12.5)) > 1e-12 {
		t.Errorf("Expected band stddev %f, got %f", math.Sqrt(12.5), stats.BandSampleStd)
	}
}

func TestComputeStatsSingleBand(t *testing.T) {
	f := film.New(1, 1)
	f.AddSample(0, 0, core.NewVec3(1, 1, 1))

	stats := computeStats(f, []int64{1}, []int{1})
	if stats.BandSampleMean != 1 || stats.BandSampleStd != 0 {
		t.Errorf("Expected mean 1 and stddev 0, got %f and %f", stats.BandSampleMean, stats.BandSampleStd)
	}
	if stats.MinSamples != 1 || stats.MaxSamplesUsed != 1 {
		t.Errorf("Expected min and max 1, got %d and %d", stats.MinSamples, stats.MaxSamplesUsed)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := computeStats(film.New(0, 0), nil, nil)
	if stats.TotalPixels != 0 || stats.TotalSamples != 0 || stats.AverageSamples != 0 || stats.Passes != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}
}
