package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hypernim/game"
)

var rootCmd = &cobra.Command{
	Use:   "hypernim",
	Short: "Hypernim plays and evaluates a take-away game on hypergraphs",
	Long: `Hypernim is a two-player take-away game on hypergraph positions:
each move deletes one vertex together with every edge and face incident to
it, and the player who removes the last vertex wins. The tool plays games,
computes Grundy values, and renders bounded game trees.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("scenario", "", "YAML scenario file (built-in demo position when unset)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// loadState builds the initial position from --scenario, falling back to
// the built-in demo position.
func loadState(cmd *cobra.Command) (*game.Hypergraph, *game.Scenario, error) {
	scenario := game.DemoScenario()
	if path, _ := cmd.Flags().GetString("scenario"); path != "" {
		var err error
		scenario, err = game.LoadScenario(path)
		if err != nil {
			return nil, nil, err
		}
	}
	state, err := scenario.Build()
	if err != nil {
		return nil, nil, err
	}
	return state, scenario, nil
}
