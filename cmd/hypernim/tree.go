package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hypernim/solver"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Render the game tree of the position",
	Long:  `Explores the position's game tree down to --depth levels and prints it as an indented listing, marking truncated branches.`,
	Run: func(cmd *cobra.Command, args []string) {
		state, scenario, err := loadState(cmd)
		if err != nil {
			fmt.Printf("Error loading scenario: %v\n", err)
			os.Exit(1)
		}

		depth, _ := cmd.Flags().GetInt("depth")
		builder := solver.NewTreeBuilder(solver.NewEvaluator())
		root := builder.Build(state, depth)

		fmt.Printf("Scenario %q\n", scenario.Name)
		printTree(root, 0)
	},
}

func printTree(node *solver.TreeNode, indent int) {
	marker := ""
	if node.Truncated {
		marker = " [truncated]"
	}
	if node.CycleDetected {
		marker = " [cycle]"
	}
	fmt.Printf("%s- g=%d %s%s\n", strings.Repeat("  ", indent), node.Grundy, node.State, marker)
	for _, child := range node.Children {
		printTree(child, indent+1)
	}
}

func init() {
	treeCmd.Flags().Int("depth", solver.Unbounded, "Maximum depth to explore (-1 for unbounded)")
	rootCmd.AddCommand(treeCmd)
}
