package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/discochess/draughts"
)

var (
	// Global flags.
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "draughts",
	Short: "Checkers engine with minimax and alpha-beta search",
	Long: `Draughts is a CLI for an American checkers engine. It generates
legal moves under the forced-capture rule, searches the game tree with
minimax or alpha-beta (optionally with move ordering), and reports search
instrumentation for every move.

Examples:
  # Play against the engine
  draughts play

  # Analyze a position
  draughts analyze ".b.b.b.b/b.b.b.b./.b.b.b.b/......../......../w.w.w.w./.w.w.w.w/w.w.w.w. w"

  # Compare the three strategies
  draughts bench --positions 20`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.draughts.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.PersistentFlags().String("strategy", draughts.AlphaBetaOrdering.String(), "search strategy: minimax, alphabeta, alphabeta-ordering")
	rootCmd.PersistentFlags().Duration("time-limit", 2*time.Second, "time budget per search (recommended 1-3s)")
	rootCmd.PersistentFlags().Int("max-ply", 6, "depth budget in plies (recommended 5-9)")

	viper.BindPFlag("strategy", rootCmd.PersistentFlags().Lookup("strategy"))
	viper.BindPFlag("time-limit", rootCmd.PersistentFlags().Lookup("time-limit"))
	viper.BindPFlag("max-ply", rootCmd.PersistentFlags().Lookup("max-ply"))
}

// initConfig reads the optional config file so flag defaults can live in
// $HOME/.draughts.yaml.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".draughts")
		}
	}
	viper.SetEnvPrefix("draughts")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}
}

// searchConfigFromFlags assembles the per-search config from flags, config
// file and environment.
func searchConfigFromFlags() (draughts.SearchConfig, error) {
	strategy, err := draughts.ParseStrategy(viper.GetString("strategy"))
	if err != nil {
		return draughts.SearchConfig{}, err
	}
	cfg := draughts.SearchConfig{
		Strategy:  strategy,
		TimeLimit: viper.GetDuration("time-limit"),
		MaxPly:    viper.GetInt("max-ply"),
	}
	if err := cfg.Validate(); err != nil {
		return draughts.SearchConfig{}, err
	}
	return cfg, nil
}

// newLogger returns a development logger when --verbose is set.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func newEngine() (*draughts.Engine, error) {
	return draughts.New(draughts.WithLogger(newLogger()))
}
