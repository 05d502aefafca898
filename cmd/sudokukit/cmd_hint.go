package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/game"
	"svw.info/sudokukit/internal/hint"
)

var hintGame string

var commandHint = &cobra.Command{
	Use:   "hint",
	Short: "Suggest the next cell for a saved game",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHint(); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	commandHint.Flags().StringVar(&hintGame, "game", "data/savegame.json", "saved game file")
	mainCommand.AddCommand(commandHint)
}

func runHint() error {
	data, err := os.ReadFile(hintGame)
	if err != nil {
		return err
	}
	var st game.State
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	h, found, err := hint.New().Hint(context.Background(), &st.Values, &st.Solution)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("board already matches the solution, no hint to give")
		return nil
	}
	fmt.Printf("r%dc%d: %d\n", h.Cell.Row+1, h.Cell.Col+1, h.Value)
	return nil
}
