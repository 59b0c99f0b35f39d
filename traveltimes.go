package main

import (
	"fmt"
	"log"

	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	"github.com/spf13/cobra"
)

func travelTimesCommand() *cobra.Command {
	var out string
	var min, max int

	cmd := &cobra.Command{
		Use:   "traveltimes",
		Short: "Generate a random travel time table",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := environmentConfig()
			if err != nil {
				return fmt.Errorf("traveltimes: %v", err)
			}

			tt, err := cabdriver.RandomTravelTimes(env.CabDriver, min, max,
				seed)
			if err != nil {
				return fmt.Errorf("traveltimes: %v", err)
			}
			if err := tt.Save(out); err != nil {
				return fmt.Errorf("traveltimes: %v", err)
			}

			log.Printf("saved travel times of shape %v in [%d, %d] hours "+
				"to %v", tt.Shape(), tt.Min(), tt.Max(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "traveltimes.gob", "File to "+
		"save the travel time table to")
	cmd.Flags().IntVar(&min, "min", 1, "Minimum travel time between "+
		"distinct locations in hours")
	cmd.Flags().IntVar(&max, "max", 11, "Maximum travel time in hours")
	return cmd
}
