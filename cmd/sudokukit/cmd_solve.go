package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/render"
)

var (
	solveIn        string
	solveSolver    string
	solveCountOnly bool
	solveLimit     int
	solveProfile   bool
)

var commandSolve = &cobra.Command{
	Use:   "solve [board]",
	Short: "Solve a board, or count its solutions",
	Long: `Solve a board given as 81 characters ('1'-'9', '.' or '0' for empty),
read from the argument, --in, or stdin. Whitespace and newlines are ignored,
so the 9-lines-of-9 form works too.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSolve(args); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	commandSolve.Flags().StringVarP(&solveIn, "in", "i", "", "read the board from a file")
	commandSolve.Flags().StringVar(&solveSolver, "solver", "backtrack", "backtrack|dlx")
	commandSolve.Flags().BoolVar(&solveCountOnly, "count-only", false, "count solutions instead of printing one")
	commandSolve.Flags().IntVar(&solveLimit, "limit", 2, "stop counting at this many solutions")
	commandSolve.Flags().BoolVar(&solveProfile, "profile", false, "write a CPU profile")
	mainCommand.AddCommand(commandSolve)
}

func runSolve(args []string) error {
	if solveProfile {
		defer profile.Start().Stop()
	}
	grid, err := readBoard(args)
	if err != nil {
		return err
	}
	s, err := newSolver(solveSolver)
	if err != nil {
		return err
	}
	ctx := context.Background()

	if solveCountOnly {
		n, st, err := s.CountSolutions(ctx, grid, solveLimit)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"nodes": st.Nodes,
			"dur":   st.Duration.Round(time.Millisecond),
		}).Debug("count finished")
		if n >= solveLimit {
			fmt.Printf("%d+ solutions\n", n)
		} else {
			fmt.Printf("%d solution(s)\n", n)
		}
		return nil
	}

	out, st, err := s.Solve(ctx, grid)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"nodes": st.Nodes,
		"dur":   st.Duration.Round(time.Millisecond),
	}).Debug("solve finished")
	render.Board(os.Stdout, *out, grid, colorOutput(os.Stdout))
	return nil
}

func readBoard(args []string) (*domain.Grid, error) {
	var raw string
	switch {
	case len(args) == 1:
		raw = args[0]
	case solveIn != "":
		data, err := os.ReadFile(solveIn)
		if err != nil {
			return nil, err
		}
		raw = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		raw = string(data)
	}
	raw = strings.Join(strings.Fields(raw), "")
	g, err := domain.ParseLine(raw)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
