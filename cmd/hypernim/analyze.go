package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"hypernim/solver"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the position's Grundy value and components",
	Long:  `Evaluates the position's Grundy value, reports whether it is a win for the player to move, and lists its connected components.`,
	Run: func(cmd *cobra.Command, args []string) {
		state, scenario, err := loadState(cmd)
		if err != nil {
			fmt.Printf("Error loading scenario: %v\n", err)
			os.Exit(1)
		}

		eval := solver.NewEvaluator(solver.WithMetrics())
		value := eval.Grundy(state)

		fmt.Printf("Scenario %q\n%s\n", scenario.Name, state)

		p := termenv.ColorProfile()
		verdict := termenv.String("N-position: the player to move wins").Foreground(p.Color("#4ade80"))
		if value == 0 {
			verdict = termenv.String("P-position: the player to move loses").Foreground(p.Color("#f87171"))
		}
		fmt.Printf("Grundy value: %d (%s)\n", value, verdict)

		components := state.Components()
		fmt.Printf("Components: %d\n", len(components))
		for i, component := range components {
			fmt.Printf("  %d: %s\n", i+1, component)
		}

		m := eval.Metrics()
		fmt.Printf("States evaluated: %d (cache hits %d, misses %d)\n", m.Evaluated, m.Hits, m.Misses)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
