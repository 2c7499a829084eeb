package sweepctl

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sweepproject/sweeprunner/internal/runner"
)

// Run executes every task index in the inclusive range [first, last] against
// the configured handler, at most Parallelism tasks at a time. Tasks are
// mutually independent: one failing task neither cancels nor retries the
// others. The index range is what the scheduler's array declaration would
// be; sweepctl run stands in for the scheduler on a single machine.
func (a *App) Run(ctx context.Context, first int, last int) error {
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if last < first {
		return errors.Errorf("empty task-index range [%d, %d]", first, last)
	}

	parallelism := a.Config.Parallelism
	if parallelism == 0 {
		parallelism = 1
	}

	r := runner.New(a.Config)
	total := last - first + 1
	log.Infof("running %d sweep tasks with parallelism %d", total, parallelism)

	var mu sync.Mutex
	var failed []int

	g := &errgroup.Group{}
	g.SetLimit(parallelism)
	for index := first; index <= last; index++ {
		index := index
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := r.Run(ctx, index); err != nil {
				mu.Lock()
				failed = append(failed, index)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(failed) > 0 {
		return errors.Errorf("%d of %d sweep tasks failed, e.g. task index %d", len(failed), total, failed[0])
	}
	fmt.Fprintf(a.Out, "All %d sweep tasks succeeded\n", total)
	return nil
}
