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

// Package macroatom reports macro-atom level and k-packet emissivities
// summed over a run's cell array, for use after a spectral cycle's
// emissivity accounting pass (§4.G). It should only be called when the
// run's ionization mode is macro-atom based.
package macroatom

import (
	"fmt"
	"io"

	wind "github.com/radwind/windtransport"
)

// Report logs, for each macro-atom level 0..nlevelsMacro (inclusive),
// the cumulative matom_abs/matom_emiss totals summed over cells up
// through that level, followed by the k-packet absorption/emission
// totals and geo's f_matom/f_kpkt fractions. The running totals are
// deliberately not reset between levels, mirroring the level-by-level
// cumulative report this is grounded on.
func Report(geo *wind.Geometry, cells []wind.WindCell, nlevelsMacro int, w io.Writer) error {
	var emissSum, absSum float64

	for m := 0; m <= nlevelsMacro; m++ {
		for n := range cells {
			c := &cells[n]
			if m < len(c.MatomEmiss) {
				emissSum += c.MatomEmiss[m]
			}
			if m < len(c.MatomAbs) {
				absSum += c.MatomAbs[m]
			}
		}
		if _, err := fmt.Fprintf(w, "Macro Atom level emissivities (summed over cells): n %d matom_abs %8.4e matom_emiss %8.4e\n",
			m, absSum, emissSum); err != nil {
			return fmt.Errorf("macroatom.Report: %v", err)
		}
	}

	emissSum, absSum = 0, 0
	for n := range cells {
		c := &cells[n]
		emissSum += c.KpktEmiss
		absSum += c.KpktAbs
	}
	if _, err := fmt.Fprintf(w, "Kpkt emissivities (summed over cells): kpkt_abs %8.4e kpkt_emiss %8.4e\n",
		absSum, emissSum); err != nil {
		return fmt.Errorf("macroatom.Report: %v", err)
	}

	if _, err := fmt.Fprintf(w, "Totals: f_matom %e f_kpkt %e\n", geo.FMatom, geo.FKpkt); err != nil {
		return fmt.Errorf("macroatom.Report: %v", err)
	}
	return nil
}
