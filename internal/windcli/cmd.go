/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package windcli wires the cobra/pflag/viper command surface onto the
// wind package's simulation bootstrap, per §6.
package windcli

import (
	"fmt"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	wind "github.com/radwind/windtransport"
)

// Cfg holds the bound configuration and the cobra command tree.
type Cfg struct {
	*viper.Viper

	Root *cobra.Command

	// RootName is the parameter-file root name taken from the
	// positional argument (§6); Run reads <RootName>.windsave when
	// restarting. <RootName>.pf is not read, and no .windsave is written.
	RootName string
}

var options = []struct {
	name, usage, shorthand string
	defaultVal             interface{}
}{
	{"restart", "restart from a prior <root>.windsave", "r", false},
	{"time-limit", "soft time limit in seconds, checked between cycles", "t", 0},
	{"verbosity", "verbosity level 1..5", "v", 3},
	{"diagnostic", "enable advanced/diagnostic mode", "d", false},
	{"fixed-temp", "fixed-temperature mode (suppress T updates during cycles)", "f", false},
	{"max-errors", "error-count ceiling before abort", "e", 100},
	{"inputs-only", "exit after parameter parsing", "i", false},
}

// InitializeConfig builds the root command, binds each flag to viper,
// and returns the Cfg used by main to execute the run.
func InitializeConfig() *Cfg {
	cfg := &Cfg{Viper: viper.New()}

	cfg.Root = &cobra.Command{
		Use:   "windtransport [flags] <root>",
		Short: "A Monte Carlo radiative-transfer simulator for biconical accretion-disk winds.",
		Long: `windtransport runs a Monte Carlo radiative-transfer simulation of a
biconical accretion-disk wind over an imported polar (r,theta) grid.

Configuration is taken from command-line flags only; neither a
<root>.pf parameter file nor environment variables are read.`,
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.RootName = strings.TrimSuffix(args[0], ".pf")
			return bindFlags(cfg, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cfg)
		},
	}

	fs := cfg.Root.Flags()
	for _, o := range options {
		switch v := o.defaultVal.(type) {
		case bool:
			fs.BoolP(o.name, o.shorthand, v, o.usage)
		case int:
			fs.IntP(o.name, o.shorthand, v, o.usage)
		default:
			panic(fmt.Sprintf("windcli: unsupported default type for flag %q", o.name))
		}
	}

	return cfg
}

func bindFlags(cfg *Cfg, fs *pflag.FlagSet) error {
	cfg.SetEnvPrefix("WIND")
	for _, o := range options {
		if err := cfg.BindPFlag(o.name, fs.Lookup(o.name)); err != nil {
			return fmt.Errorf("windcli: binding flag %q: %v", o.name, err)
		}
	}
	return nil
}

// Execute runs the root command, writing any returned error to stderr
// and exiting with status 1. This is the sole point in the program
// that calls os.Exit for a fatal condition.
func Execute() {
	cfg := InitializeConfig()
	if err := cfg.Root.Execute(); err != nil {
		wind.Logger.Error(err)
		os.Exit(1)
	}
}
