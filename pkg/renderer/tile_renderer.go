package renderer

import (
	"math/rand"

	"go.uber.org/atomic"

	"github.com/df07/go-glimpse/pkg/camera"
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/film"
	"github.com/df07/go-glimpse/pkg/integrator"
)

// newBandSampler seeds the generator owned by band index from the render seed
func newBandSampler(seed int64, index int) *core.RandomSampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed + int64(index))))
}

// bandJob is the read-only render input shared by every band, plus the
// outputs each band writes only within its own rows
type bandJob struct {
	frame      camera.Frame
	env        integrator.Environment
	integrator integrator.Integrator
	film       *film.Film
	image      *film.Image
	progress   *atomic.Int64
}

// renderCell takes the (si, sj) stratum sample for every pixel of the band
// and returns the number of samples taken
func (job *bandJob) renderCell(band Band, si, sj int, sampler core.Sampler) int64 {
	var samples int64
	for j := band.StartRow; j < band.EndRow; j++ {
		for i := 0; i < job.frame.ImageWidth; i++ {
			ray := job.frame.PixelRay(i, j, si, sj, sampler)
			color := integrator.Sanitize(job.integrator.RayColor(ray, job.env, sampler))

			job.film.AddSample(i, j, color)
			job.image.Set(i, j, job.film.Sample(i, j))
			job.progress.Inc()
			samples++
		}
	}
	return samples
}
