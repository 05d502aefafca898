package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/ports"
	"svw.info/sudokukit/internal/solver"
)

func init() {
	logrus.StandardLogger().Formatter.(*logrus.TextFormatter).ForceColors = true
}

var (
	logLevel string
	noColor  bool
)

var mainCommand = &cobra.Command{
	Use:   "sudokukit",
	Short: "Sudoku puzzle engine: generate, solve, hint, serve",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatal(err)
		}
		logrus.SetLevel(level)
	},
}

func main() {
	mainCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "set log level")
	mainCommand.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored board output")
	if err := mainCommand.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newSolver(kind string) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "backtrack", "backtracking":
		return solver.NewBacktracking(), nil
	case "dlx":
		return solver.NewDLX(), nil
	default:
		return nil, &unknownSolverError{kind}
	}
}

type unknownSolverError struct{ kind string }

func (e *unknownSolverError) Error() string {
	return "unknown solver " + e.kind + " (want backtrack|dlx)"
}

func colorOutput(f *os.File) bool {
	if noColor {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
