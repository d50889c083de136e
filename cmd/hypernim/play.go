package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"hypernim/engine"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a full game with random vertex moves",
	Long:  `Plays the position to a terminal outcome, both players picking a random vertex each turn, and announces the winner.`,
	Run: func(cmd *cobra.Command, args []string) {
		state, scenario, err := loadState(cmd)
		if err != nil {
			fmt.Printf("Error loading scenario: %v\n", err)
			os.Exit(1)
		}

		seed, _ := cmd.Flags().GetUint64("seed")
		rng := rand.New(rand.NewSource(seed))

		fmt.Printf("Scenario %q\n%s\n", scenario.Name, state)

		eng := engine.New(state, "Player 1", "Player 2")
		for !eng.IsGameOver() {
			vertices := eng.State.Vertices()
			v := vertices[rng.Intn(len(vertices))]
			player := eng.CurrentPlayer()
			if err := eng.MoveVertex(v); err != nil {
				fmt.Printf("Error applying move: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("[%s] removes vertex %s -> %s\n", player, v, eng.State)
		}

		p := termenv.ColorProfile()
		banner := termenv.String(fmt.Sprintf("Winner: %s", eng.Winner())).Foreground(p.Color("#a78bfa")).Bold()
		fmt.Println(banner)
	},
}

func init() {
	playCmd.Flags().Uint64("seed", 1, "Random seed for move selection")
	rootCmd.AddCommand(playCmd)
}
