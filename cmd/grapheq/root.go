package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grapheq/grapheq"
)

var rootCmd = &cobra.Command{
	Use:   "grapheq",
	Short: "grapheq resolves engineering quantities through relation hypergraphs",
	Long: `grapheq resolves an unknown physical quantity from a network of
interrelated equations, given a subset of known quantities. The built-in
catalogue covers Timoshenko beam theory; any quantity of the catalogue can be
the target or a known.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the engine version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(grapheq.Version)
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
	rootCmd.AddCommand(versionCmd)
}
