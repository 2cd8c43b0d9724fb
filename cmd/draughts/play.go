package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/discochess/draughts"
	"github.com/discochess/draughts/board"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play checkers against the engine in the terminal",
	Long: `Play an interactive game against the engine. You play White and move
first; the engine plays Black with the configured strategy.

Enter moves as four numbers: start row, start column, target row, target
column (0-based). For a multi-jump it is enough to name the first landing
square; the forced continuation is completed automatically.

Example:
  draughts play --strategy alphabeta --time-limit 2s --max-ply 6`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var showAnalytics bool

func init() {
	playCmd.Flags().BoolVar(&showAnalytics, "analytics", true, "show search instrumentation after engine moves")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := searchConfigFromFlags()
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	b := draughts.NewGame()
	reader := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	fmt.Println("You are White (w). Men move up; kings (W) move both ways.")
	fmt.Println("Captures are mandatory. Enter moves as: row col row col")

	for {
		fmt.Println()
		fmt.Println(b)

		if outcome := engine.Outcome(b); outcome != draughts.InProgress {
			fmt.Println("game over:", outcome)
			return nil
		}

		if b.SideToMove() == board.White {
			if err := humanMove(engine, b, reader); err != nil {
				return err
			}
			continue
		}

		res, err := engine.Search(ctx, b, cfg)
		if err != nil {
			return fmt.Errorf("engine move: %w", err)
		}
		if err := engine.ApplyMove(b, res.Move); err != nil {
			return fmt.Errorf("engine move: %w", err)
		}
		fmt.Println("engine plays:", res.Move)
		if showAnalytics {
			printAnalytics(res)
		}
	}
}

// humanMove prompts until the entered coordinates match a legal move. For a
// multi-jump, the target may be either the first landing square or the final
// one; the full chain is applied.
func humanMove(engine *draughts.Engine, b *board.Board, reader *bufio.Reader) error {
	legal := engine.LegalMoves(b)

	for {
		fmt.Print("your move> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading move: %w", err)
		}
		fields := strings.Fields(line)
		if len(fields) == 1 && (fields[0] == "moves" || fields[0] == "?") {
			for _, m := range legal {
				fmt.Println(" ", m)
			}
			continue
		}
		if len(fields) != 4 {
			fmt.Println("enter four numbers: start row, start col, target row, target col (or 'moves')")
			continue
		}
		var n [4]int
		bad := false
		for i, f := range fields {
			if _, err := fmt.Sscanf(f, "%d", &n[i]); err != nil {
				bad = true
				break
			}
		}
		if bad {
			fmt.Println("coordinates must be numbers 0-7")
			continue
		}

		from := board.Square{Row: n[0], Col: n[1]}
		target := board.Square{Row: n[2], Col: n[3]}
		m, ok := matchMove(legal, from, target)
		if !ok {
			fmt.Println("not a legal move; captures are mandatory when available (try 'moves')")
			continue
		}
		return engine.ApplyMove(b, m)
	}
}

// matchMove finds the legal move starting at from whose first or final
// landing square equals target.
func matchMove(legal []board.Move, from, target board.Square) (board.Move, bool) {
	for _, m := range legal {
		if m.From != from {
			continue
		}
		if m.Path[0] == target || m.To() == target {
			return m, true
		}
	}
	return board.Move{}, false
}

func printAnalytics(res *draughts.SearchResult) {
	fmt.Printf("  strategy=%s depth=%d value=%.3f\n", res.Strategy, res.Depth, res.Value)
	fmt.Printf("  nodes expanded=%d generated=%d prunes=%d time=%s\n",
		res.NodesExpanded, res.NodesGenerated, res.Prunes, res.Elapsed.Round(time.Millisecond))
	if res.Strategy == draughts.AlphaBetaOrdering {
		fmt.Printf("  ordering gain ~%.1f%% fewer prunes needed\n", res.OrderingGain)
	}
	if res.TimedOut {
		fmt.Println("  (time budget reached; used deepest completed depth)")
	}
}
