package renderer

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-glimpse/pkg/film"
	"github.com/df07/go-glimpse/pkg/geometry"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	ID             uuid.UUID     // Unique render identifier, also used in logs and traces
	Duration       time.Duration // Wall time of RenderScene
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int64         // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	MinSamples     int           // Fewest samples taken by any pixel
	MaxSamplesUsed int           // Most samples taken by any pixel
	Passes         int           // Full stratified passes finished by the slowest band

	BandSamples    []int64 // Samples taken by each band
	BandSampleMean float64 // Mean of BandSamples
	BandSampleStd  float64 // Standard deviation of BandSamples
	BVH            geometry.Stats
}

// computeStats summarizes the film and the per-band counters after a render
func computeStats(f *film.Film, bandSamples []int64, bandPasses []int) RenderStats {
	stats := RenderStats{
		TotalPixels: f.Width() * f.Height(),
		BandSamples: bandSamples,
	}

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			count := f.SampleCount(x, y)
			if x == 0 && y == 0 {
				stats.MinSamples = count
			}
			stats.MinSamples = min(stats.MinSamples, count)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, count)
		}
	}

	stats.TotalSamples = lo.Sum(bandSamples)
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	if len(bandPasses) > 0 {
		stats.Passes = lo.Min(bandPasses)
	}

	if len(bandSamples) > 0 {
		values := lo.Map(bandSamples, func(n int64, _ int) float64 { return float64(n) })
		if len(values) > 1 {
			stats.BandSampleMean, stats.BandSampleStd = stat.MeanStdDev(values, nil)
		} else {
			stats.BandSampleMean = values[0]
		}
	}

	return stats
}
