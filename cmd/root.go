/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "adapy",
	Short: "Converts FEM meshes and modal results into view geometry",
	Long: `
Reads Gmsh and SU2 meshes into vertex, edge and face arrays for viewers, and
eigenmode results from MED/RMED files into animation frames.

adapy view -F model.msh -f json
adapy modes -R model.rmed`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("profile") {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.adapy.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print mesh statistics and parameters")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile to the current directory")
	rootCmd.PersistentFlags().Bool("counters", false, "report CPU instruction counts (Linux only)")
	for _, name := range []string{"verbose", "profile", "counters"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".adapy" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".adapy")
	}

	viper.SetEnvPrefix("adapy")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// runMeasured runs fn, counting instructions when --counters is set.
func runMeasured(fn func() error) error {
	if !viper.GetBool("counters") {
		return fn()
	}
	return countInstructions(fn)
}
