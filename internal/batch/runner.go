// Package batch processes many game files concurrently
package batch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/myusername/pbp-indicators/pkg/models"
)

// ProcessFunc processes one game file
type ProcessFunc func(ctx context.Context, path string) (*models.GameResult, error)

// Outcome is the result of one game file. Exactly one of Result and Err is set.
type Outcome struct {
	Path   string
	Result *models.GameResult
	Err    error
}

// RunOptions configures a batch run
type RunOptions struct {
	// Workers bounds the number of games processed at once
	Workers int
	// OnError is called when a game fails. If nil, errors are logged.
	OnError func(path string, err error)
}

// Run processes every path and returns the outcomes in input order. A failing game is
// recorded on its outcome and never stops the others. Games not yet started when ctx
// is cancelled get ctx's error.
func Run(ctx context.Context, paths []string, process ProcessFunc, opts RunOptions) []Outcome {
	outcomes := make([]Outcome, len(paths))
	if len(paths) == 0 {
		return outcomes
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	onError := opts.OnError
	if onError == nil {
		onError = func(path string, err error) {
			slog.Error("Game failed", "path", path, "error", err)
		}
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, path := range paths {
		outcomes[i].Path = path
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}

		select {
		case <-ctx.Done():
			outcomes[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := process(ctx, path)
			if err != nil {
				outcomes[i].Err = err
				onError(path, err)
				return
			}
			outcomes[i].Result = result
		}(i, path)
	}

	wg.Wait()
	return outcomes
}

// Failed counts the outcomes that carry an error
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
