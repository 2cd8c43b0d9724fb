package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/discochess/draughts"
	"github.com/discochess/draughts/board"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [position]",
	Short: "Search a position and print the best move",
	Long: `Search a single position and print the selected move with full
instrumentation. The position uses the engine's notation: eight
'/'-separated rows of '.', 'w', 'W', 'b', 'B' (row 0 first), then the side
to move.

Examples:
  # Starting position
  draughts analyze ".b.b.b.b/b.b.b.b./.b.b.b.b/......../......../w.w.w.w./.w.w.w.w/w.w.w.w. w"

  # Endgame, Black to move, with plain alpha-beta
  draughts analyze --strategy alphabeta "......../......../...b..../......../.....W../......../......../........ b"`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var analyzeJSON bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	b, err := board.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing position: %w", err)
	}
	cfg, err := searchConfigFromFlags()
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	res, err := engine.Search(context.Background(), b, cfg)
	if err != nil {
		if errors.Is(err, draughts.ErrNoLegalMove) {
			return fmt.Errorf("position is terminal: %s", engine.Outcome(b))
		}
		return fmt.Errorf("search failed: %w", err)
	}

	if analyzeJSON {
		return printResultJSON(os.Stdout, res)
	}
	printResultText(b, res)
	return nil
}

func printResultText(b *board.Board, res *draughts.SearchResult) {
	fmt.Println(b)
	fmt.Printf("Side:     %s\n", b.SideToMove())
	fmt.Printf("Move:     %s\n", res.Move)
	fmt.Printf("Value:    %s\n", formatValue(res.Value))
	fmt.Printf("Depth:    %d\n", res.Depth)
	fmt.Printf("Nodes:    %d expanded, %d generated\n", res.NodesExpanded, res.NodesGenerated)
	fmt.Printf("Prunes:   %d\n", res.Prunes)
	fmt.Printf("Time:     %s\n", res.Elapsed)
	if res.Strategy == draughts.AlphaBetaOrdering {
		fmt.Printf("Ordering: ~%.1f%% gain\n", res.OrderingGain)
	}
}

// analyzeOutput is the JSON shape of one analyze run.
type analyzeOutput struct {
	Move           string `json:"move"`
	Value          string `json:"value"`
	Strategy       string `json:"strategy"`
	Depth          int    `json:"depth"`
	NodesExpanded  int64  `json:"nodes_expanded"`
	NodesGenerated int64  `json:"nodes_generated"`
	Prunes         int64  `json:"prunes"`
	ElapsedMs      int64  `json:"elapsed_ms"`
	TimedOut       bool   `json:"timed_out"`
}

func printResultJSON(w io.Writer, res *draughts.SearchResult) error {
	return json.NewEncoder(w).Encode(analyzeOutput{
		Move:           res.Move.String(),
		Value:          formatValue(res.Value),
		Strategy:       res.Strategy.String(),
		Depth:          res.Depth,
		NodesExpanded:  res.NodesExpanded,
		NodesGenerated: res.NodesGenerated,
		Prunes:         res.Prunes,
		ElapsedMs:      res.Elapsed.Milliseconds(),
		TimedOut:       res.TimedOut,
	})
}

// formatValue renders proven wins and losses as "win"/"loss" instead of
// infinities.
func formatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "win"
	case math.IsInf(v, -1):
		return "loss"
	default:
		return fmt.Sprintf("%+.3f", v)
	}
}
