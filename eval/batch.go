package eval

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/internal/options"
	"github.com/arloliu/polytape/internal/pool"
	"github.com/arloliu/polytape/tape"
)

type batchConfig struct {
	workers int
	shape   []int
}

// BatchOption configures Batch.
type BatchOption = options.Option[*batchConfig]

// WithWorkers sets the number of goroutines Batch uses.
// The default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) BatchOption {
	return options.New(func(c *batchConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: worker count %d must be positive", errs.ErrRange, n)
		}
		c.workers = n

		return nil
	})
}

// WithShape sets the per-parameter-set shape of the batch result. Without it
// each parameter set yields a one-dimensional row of record values.
func WithShape(dims ...int) BatchOption {
	return options.New(func(c *batchConfig) error {
		if _, err := shapeSize(dims); err != nil {
			return err
		}
		c.shape = dims

		return nil
	})
}

// Batch evaluates t at every parameter vector of paramSets.
//
// The result has shape (len(paramSets), rowShape...), where the row for
// paramSets[i] holds exactly what Evaluate(t, paramSets[i]) returns. Rows are
// evaluated concurrently; the tape is validated once up front. If any row
// fails, the error of the lowest failing row is returned.
func Batch(t *tape.Tape, paramSets [][]float64, opts ...BatchOption) (*Result, error) {
	cfg := &batchConfig{workers: runtime.GOMAXPROCS(0)}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	rowShape, size, err := resolveShape(t, cfg.shape)
	if err != nil {
		return nil, err
	}
	if len(cfg.shape) > 0 {
		if err := checkRecords(t, size); err != nil {
			return nil, err
		}
	}

	rows := len(paramSets)
	res := &Result{shape: append([]int{rows}, rowShape...), kind: t.Kind()}

	var evalRow func(i int) error
	if t.IsComplex() {
		res.complexData = make([]complex128, rows*size)
		evalRow = func(i int) error {
			cparams, cleanup := pool.GetComplex128Slice(len(paramSets[i]))
			defer cleanup()
			promote(cparams, paramSets[i])

			return Bulk(t.Vars(), t.ComplexCoeffs(), cparams, res.complexData[i*size:(i+1)*size])
		}
	} else {
		res.realData = make([]float64, rows*size)
		evalRow = func(i int) error {
			return Bulk(t.Vars(), t.RealCoeffs(), paramSets[i], res.realData[i*size:(i+1)*size])
		}
	}

	rowErrs := make([]error, rows)
	var next atomic.Int64
	var wg sync.WaitGroup
	for range min(cfg.workers, rows) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= rows {
					return
				}
				rowErrs[i] = evalRow(i)
			}
		}()
	}
	wg.Wait()

	for i, err := range rowErrs {
		if err != nil {
			return nil, fmt.Errorf("parameter set %d: %w", i, err)
		}
	}

	return res, nil
}
