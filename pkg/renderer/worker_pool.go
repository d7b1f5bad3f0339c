package renderer

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Band is a contiguous range of image rows [StartRow, EndRow) owned by one worker
type Band struct {
	Index    int
	StartRow int
	EndRow   int
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.EndRow - b.StartRow
}

// NewBands splits height rows into min(numWorkers, height) contiguous bands.
// Every band gets height/n rows; the last band also takes the remainder.
func NewBands(height, numWorkers int) []Band {
	if height <= 0 {
		return nil
	}
	n := max(1, min(numWorkers, height))
	rowsPerBand := height / n

	bands := make([]Band, n)
	for i := range bands {
		start := i * rowsPerBand
		end := start + rowsPerBand
		if i == n-1 {
			end = height
		}
		bands[i] = Band{Index: i, StartRow: start, EndRow: end}
	}
	return bands
}

// WorkerPool runs one goroutine per band and joins them
type WorkerPool struct {
	group *errgroup.Group
	ctx   context.Context
}

// NewWorkerPool creates a pool whose context is cancelled when any worker fails
func NewWorkerPool(ctx context.Context) *WorkerPool {
	group, groupCtx := errgroup.WithContext(ctx)
	return &WorkerPool{group: group, ctx: groupCtx}
}

// Context returns the context workers should poll
func (wp *WorkerPool) Context() context.Context {
	return wp.ctx
}

// Go starts fn on its own goroutine. A panic in fn is recovered and
// reported as that worker's error.
func (wp *WorkerPool) Go(name string, fn func(ctx context.Context) error) {
	wp.group.Go(func() (err error) {
		defer func() {
			if p := recover(); p != nil {
				err = errors.Errorf("%s panicked: %v", name, p)
			}
		}()
		return fn(wp.ctx)
	})
}

// Wait blocks until every worker returns and reports the first error
func (wp *WorkerPool) Wait() error {
	return wp.group.Wait()
}

func bandName(b Band) string {
	return fmt.Sprintf("band %d (rows %d-%d)", b.Index, b.StartRow, b.EndRow-1)
}
