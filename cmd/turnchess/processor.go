// processor.go - Batch replay of script files
package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/lgbarn/turnchess/internal/chess"
	"github.com/lgbarn/turnchess/internal/config"
	"github.com/lgbarn/turnchess/internal/engine"
	"github.com/lgbarn/turnchess/internal/game"
	"github.com/lgbarn/turnchess/internal/script"
	"github.com/lgbarn/turnchess/internal/worker"
)

// runBatch replays each script file in its own game, numWorkers at a
// time, and prints one summary line per file in argument order. The first
// replay error stops the batch; scripts not yet started are skipped.
func runBatch(cfg *config.Config, files []string, numWorkers int) int {
	scripts := make([]*script.Script, 0, len(files))
	for _, name := range files {
		sc, err := script.Load(name)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error loading script: %v\n", err)
			return exitError
		}
		scripts = append(scripts, sc)
	}

	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	pool := worker.NewPool(replayFunc(cfg),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(numWorkers*2),
		worker.WithStopWhen(func(r worker.Result) bool { return r.Err != nil }),
	)
	results := pool.Run(scripts)

	code := exitOK
	for _, r := range results {
		printResult(cfg.OutputFile, r)
		switch {
		case r.Err != nil, r.Skipped:
			code = exitError
		case r.Rejected > 0 && code == exitOK:
			code = exitRejected
		}
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d script(s) replayed with %d worker(s).\n", len(results), pool.NumWorkers())
	}
	return code
}

// replayFunc returns the per-script replay used by the pool. Games are
// created inside the worker and never shared.
func replayFunc(cfg *config.Config) worker.ReplayFunc {
	return func(job worker.Job) worker.Result {
		sc := job.Script
		result := worker.Result{Index: job.Index, Name: sc.Name}

		fen := cfg.Game.StartFEN
		if fen == "" {
			fen = sc.FEN
		}
		opts := []game.Option{
			game.WithListener(game.ListenerFuncs{
				Committed: func(game.MoveEvent) { result.Plies++ },
				Ended:     func(e game.GameEndEvent) { result.Wins[e.Winner]++ },
			}),
		}
		if fen != "" {
			board, err := engine.NewBoardFromFEN(fen)
			if err != nil {
				result.Err = err
				return result
			}
			opts = append(opts, game.WithBoard(board))
		}
		g := game.New(opts...)

		for _, step := range sc.Steps {
			if _, err := g.AttemptMove(step.From, step.To); err != nil {
				result.Rejected++
				if cfg.Game.StopOnReject {
					break
				}
			}
		}
		result.FinalFEN = g.FEN()
		return result
	}
}

func printResult(w io.Writer, r worker.Result) {
	if r.Err != nil {
		fmt.Fprintf(w, "%s: error: %v\n", r.Name, r.Err)
		return
	}
	if r.Skipped {
		fmt.Fprintf(w, "%s: skipped\n", r.Name)
		return
	}
	fmt.Fprintf(w, "%s: %d plies, %d rejected, white %d, black %d, %s\n",
		r.Name, r.Plies, r.Rejected, r.Wins[chess.White], r.Wins[chess.Black], r.FinalFEN)
}
