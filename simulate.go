package main

import (
	"fmt"
	"log"
	"os"

	"github.com/samuelfneumann/cabdriver/environment/envconfig"
	"github.com/samuelfneumann/cabdriver/experiment"
	"github.com/samuelfneumann/cabdriver/experiment/trackers"
	"github.com/samuelfneumann/cabdriver/policy"
	"github.com/samuelfneumann/cabdriver/utils/progressbar"
	"github.com/spf13/cobra"
)

// environmentConfig returns the environment configuration named by the
// --config flag, or the default configuration
func environmentConfig() (envconfig.Config, error) {
	if configFile == "" {
		return envconfig.Default(), nil
	}
	return envconfig.Load(configFile)
}

// simulate runs a policy on the cab driver environment for a number of
// episodes and logs a summary of the driver's earnings
func simulate(episodes int, p policy.Config, travelTimes,
	returnsFile string) error {
	env, err := environmentConfig()
	if err != nil {
		return err
	}
	if travelTimes != "" {
		env.TravelTimes = travelTimes
	}

	c := experiment.Config{
		Type:     experiment.OnlineExp,
		Episodes: episodes,
		EnvConf:  env,
		Policy:   p,
	}

	ret := trackers.NewReturn(returnsFile)
	length := trackers.NewEpisodeLength(returnsFile + ".length")
	hourly := trackers.NewHourlyEarnings(returnsFile + ".hourly")
	exp, err := c.CreateExp(seed, []trackers.Tracker{ret, length, hourly})
	if err != nil {
		return err
	}

	log.Printf("simulating %d episodes of the %v policy (seed %d)",
		episodes, p.Type, seed)

	bar := progressbar.New(os.Stderr, "episodes", 40, episodes)
	for ended := false; !ended; {
		if ended, err = exp.RunEpisode(); err != nil {
			return err
		}
		bar.Increment()
		bar.Display()
	}
	bar.Close()

	log.Printf("return:          %v", trackers.Summarize(ret.Data()))
	log.Printf("decisions:       %v", trackers.Summarize(length.Data()))
	log.Printf("hourly earnings: %v", trackers.Summarize(hourly.Data()))

	if returnsFile == "" {
		return nil
	}
	if err := exp.Save(); err != nil {
		return err
	}
	log.Printf("saved episode returns to %v", returnsFile)
	return nil
}

func simulateCommand() *cobra.Command {
	var episodes int
	var policyType string
	var epsilon float64
	var travelTimes string
	var returnsFile string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a fixed policy on the cab driver environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := policy.Config{
				Type:    policy.Type(policyType),
				Epsilon: epsilon,
			}
			if err := simulate(episodes, p, travelTimes,
				returnsFile); err != nil {
				return fmt.Errorf("simulate: %v", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&episodes, "episodes", "e", 100, "Number of "+
		"episodes to run")
	cmd.Flags().StringVarP(&policyType, "policy", "p",
		string(policy.RandomPolicy), "Policy to run: Random, Greedy or "+
			"EGreedy")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 0.1, "Exploration "+
		"probability of the EGreedy policy")
	cmd.Flags().StringVarP(&travelTimes, "traveltimes", "t", "", "Travel "+
		"time table saved by the traveltimes command (overrides the "+
		"configuration)")
	cmd.Flags().StringVarP(&returnsFile, "returns", "r", "", "Save "+
		"episode data with this file name prefix")
	return cmd
}
