// turnchess plays two-player chess moves on the command line, either
// interactively, by replaying a move script, or by replaying many script
// files in parallel.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/lgbarn/turnchess/internal/chess"
	"github.com/lgbarn/turnchess/internal/config"
	"github.com/lgbarn/turnchess/internal/engine"
	"github.com/lgbarn/turnchess/internal/game"
	"github.com/lgbarn/turnchess/internal/journal"
	"github.com/lgbarn/turnchess/internal/render"
	"github.com/lgbarn/turnchess/internal/script"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitRejected = 2 // a scripted move was rejected
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("turnchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	if *dumpConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitError)
		}
		os.Exit(0)
	}

	setupLogFile(cfg)
	if flag.NArg() > 0 {
		os.Exit(runBatch(cfg, flag.Args(), *workers))
	}
	if cfg.Output.Style == config.StyleColour {
		cfg.SetOutput(color.Output)
	}

	os.Exit(run(cfg, os.Stdin))
}

// loadConfig reads the configuration file, if any, and applies flags.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// setupLogFile opens the configured log file.
func setupLogFile(cfg *config.Config) {
	if cfg.LogPath == "" {
		return
	}
	file, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", cfg.LogPath, err)
		os.Exit(exitError)
	}
	cfg.LogFile = file
}

// run plays a game as configured, reading commands from in when no script
// is given, and returns the process exit code.
func run(cfg *config.Config, in io.Reader) int {
	var sc *script.Script
	if cfg.Game.ScriptPath != "" {
		loaded, err := script.Load(cfg.Game.ScriptPath)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error loading script: %v\n", err)
			return exitError
		}
		sc = loaded
	}

	board, err := startBoard(cfg, sc)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return exitError
	}

	g := game.New(
		game.WithBoard(board),
		game.WithID(cfg.Journal.GameID),
		game.WithLogger(cfg.LogFile, cfg.Verbosity),
	)

	if cfg.Journal.Enabled() {
		file, err := os.Create(cfg.Journal.Path)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error creating journal %s: %v\n", cfg.Journal.Path, err)
			return exitError
		}
		j := journal.New(file, g.ID())
		g.Subscribe(j)
		defer func() {
			if err := j.Close(); err != nil {
				fmt.Fprintf(cfg.LogFile, "Error writing journal: %v\n", err)
			}
		}()
	}

	s := newSession(g, cfg.OutputFile, boardRenderer(cfg.Output))

	code := exitOK
	if sc != nil {
		if rejected := s.replay(sc, cfg.Game.StopOnReject); rejected > 0 {
			code = exitRejected
		}
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "%d move(s) replayed, ply %d.\n", len(sc.Steps), g.Ply())
		}
	} else if err := s.interact(in); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error reading input: %v\n", err)
		code = exitError
	}

	if cfg.Output.SVGPath != "" {
		if err := writeSVG(cfg.Output, g.Snapshot()); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error writing SVG: %v\n", err)
			return exitError
		}
	}
	return code
}

// startBoard builds the starting position. A configured FEN takes
// precedence over one given in the script.
func startBoard(cfg *config.Config, sc *script.Script) (*chess.Board, error) {
	fen := cfg.Game.StartFEN
	if fen == "" && sc != nil {
		fen = sc.FEN
	}
	if fen == "" {
		return engine.NewInitialBoard(), nil
	}
	return engine.NewBoardFromFEN(fen)
}

// boardRenderer returns the terminal renderer for the configured style.
func boardRenderer(out config.OutputConfig) render.Renderer {
	switch out.Style {
	case config.StyleNone:
		return nil
	case config.StyleText:
		return render.NewText(true, out.Coordinates)
	default:
		return render.NewText(false, out.Coordinates)
	}
}

func writeSVG(out config.OutputConfig, board *chess.Board) error {
	file, err := os.Create(out.SVGPath)
	if err != nil {
		return err
	}
	if err := render.NewSVG(out.SquareSize, out.Coordinates).Render(file, board, chess.SquareSet{}); err != nil {
		file.Close() //nolint:errcheck,gosec // G104: already failing
		return err
	}
	return file.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: turnchess [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess moves from stdin or replay move scripts.\n")
	fmt.Fprintf(os.Stderr, "Script files given as arguments are replayed in parallel and summarised.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\n%s", commandHelp)
}
