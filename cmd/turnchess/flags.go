// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/turnchess/internal/config"
)

var (
	// Configuration
	configFile = flag.String("config", "", "YAML configuration file")
	dumpConfig = flag.Bool("dumpconfig", false, "Print the effective configuration as YAML and exit")

	// Game setup
	startFEN   = flag.String("fen", "", "Start from this FEN position instead of the standard one")
	scriptFile = flag.String("script", "", "Replay moves from this file (.yaml/.yml or one move per line)")
	keepGoing  = flag.Bool("k", false, "Keep replaying a script after a rejected move")
	workers    = flag.Int("workers", 0, "Number of worker threads for batch replay (0 = auto-detect based on CPU cores)")

	// Output options
	boardStyle  = flag.String("style", "", "Board style: colour, text, none")
	plainBoard  = flag.Bool("plain", false, "Plain text board (same as -style text)")
	noCoords    = flag.Bool("nocoords", false, "Don't print rank and file labels")
	svgFile     = flag.String("svg", "", "Write an SVG image of the final position")
	squareSize  = flag.Int("square", 0, "SVG square size in pixels")
	journalFile = flag.String("journal", "", "Record events as JSON lines in this file")
	gameID      = flag.String("id", "", "Game identifier stamped on journal entries")

	// Logging
	logFile = flag.String("l", "", "Write log to file")
	verbose = flag.Bool("v", false, "Log every move and rejection")
	quiet   = flag.Bool("q", false, "Log nothing")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides configuration values with the flags that were set.
func applyFlags(cfg *config.Config) error {
	applyGameFlags(cfg)
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyLogFlags(cfg)
	return nil
}

// applyGameFlags configures the start position and script replay.
func applyGameFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.Game.StartFEN = *startFEN
	}
	if *scriptFile != "" {
		cfg.Game.ScriptPath = *scriptFile
	}
	if *keepGoing {
		cfg.Game.StopOnReject = false
	}
}

// applyOutputFlags configures board, SVG and journal output.
func applyOutputFlags(cfg *config.Config) error {
	if *boardStyle != "" {
		style, err := config.ParseBoardStyle(*boardStyle)
		if err != nil {
			return err
		}
		cfg.Output.Style = style
	}
	if *plainBoard {
		cfg.Output.Style = config.StyleText
	}
	if *noCoords {
		cfg.Output.Coordinates = false
	}
	if *svgFile != "" {
		cfg.Output.SVGPath = *svgFile
	}
	if *squareSize > 0 {
		cfg.Output.SquareSize = *squareSize
	}
	if *journalFile != "" {
		cfg.Journal.Path = *journalFile
	}
	if *gameID != "" {
		cfg.Journal.GameID = *gameID
	}
	return nil
}

// applyLogFlags configures the log destination and verbosity.
func applyLogFlags(cfg *config.Config) {
	if *logFile != "" {
		cfg.LogPath = *logFile
	}
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}
