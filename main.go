package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	seed       uint64
	configFile string
)

// rootCommand returns the command line parser with all sub-commands
func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cabdriver",
		Short: "Simulate a cab driver choosing among ride requests",
	}
	root.PersistentFlags().Uint64Var(&seed, "seed", 20210909, "Seed for "+
		"all random number generators")
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"JSON environment configuration (default configuration if empty)")

	root.AddCommand(simulateCommand())
	root.AddCommand(travelTimesCommand())
	return root
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
