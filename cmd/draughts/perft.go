package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/discochess/draughts"
	"github.com/discochess/draughts/board"
)

var perftCmd = &cobra.Command{
	Use:   "perft [position]",
	Short: "Count move-tree leaves to a fixed depth",
	Long: `Walk the legal move tree to the given depth and count the leaf
positions. Useful for validating move generation: any change to the
forced-capture or multi-jump rules shows up as a different count.

Defaults to the starting position when no position is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPerft,
}

var perftDepth int

func init() {
	perftCmd.Flags().IntVar(&perftDepth, "depth", 6, "tree depth in plies")
	rootCmd.AddCommand(perftCmd)
}

func runPerft(cmd *cobra.Command, args []string) error {
	b := draughts.NewGame()
	if len(args) == 1 {
		var err error
		b, err = board.Parse(args[0])
		if err != nil {
			return fmt.Errorf("parsing position: %w", err)
		}
	}
	engine, err := newEngine()
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	for d := 1; d <= perftDepth; d++ {
		start := time.Now()
		n := perft(engine, b, d)
		fmt.Printf("depth %d: %12d leaves  (%s)\n", d, n, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func perft(engine *draughts.Engine, b *board.Board, depth int) int64 {
	moves := engine.LegalMoves(b)
	if depth == 1 {
		return int64(len(moves))
	}
	var n int64
	for _, m := range moves {
		u := b.Apply(m)
		n += perft(engine, b, depth-1)
		b.Undo(u)
	}
	return n
}
