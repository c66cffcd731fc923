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

package wind

import (
	"bufio"
	"fmt"
	"io"
)

// DiskHeatRing is one annulus of the disk-heating diagnostic report
// (§6): radial outer edge, disk half-height, baseline temperature,
// accumulated heat, photon hit count, fractional heating, the
// temperature implied by thermalizing the accumulated heat, the
// flux-weighted hit temperature, and the dilution factor of the
// irradiating flux.
type DiskHeatRing struct {
	R       float64
	Zdisk   float64
	Tdisk   float64
	Heat    float64
	Nhit    int
	Nemit   int
	Theat   float64
	Tirrad  float64
	Wirrad  float64
}

// FracHeating returns nhit/nemit, the column this core's writer
// derives rather than stores, guarding the zero-emitted-photon case.
func (r DiskHeatRing) FracHeating() float64 {
	if r.Nemit == 0 {
		return 0
	}
	return float64(r.Nhit) / float64(r.Nemit)
}

// WriteDiskHeatReport writes rings as the disk-heating diagnostic
// artifact named in §6: a commented header row followed by one row
// per ring, space separated, in the documented column order. This
// sink is fed by an external heating kernel (out of scope per spec.md
// §1); this writer only formats and persists whatever rings it is
// given, the same aggregate-and-log role the macro-atom reporter
// plays for emissivity counters.
func WriteDiskHeatReport(w io.Writer, rings []DiskHeatRing) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "# r zdisk t_disk heat nhit nhit/nemit t_heat t_irrad W_irrad"); err != nil {
		return fmt.Errorf("wind.WriteDiskHeatReport: %v", err)
	}
	for _, r := range rings {
		_, err := fmt.Fprintf(bw, "%e %e %e %e %d %e %e %e %e\n",
			r.R, r.Zdisk, r.Tdisk, r.Heat, r.Nhit, r.FracHeating(), r.Theat, r.Tirrad, r.Wirrad)
		if err != nil {
			return fmt.Errorf("wind.WriteDiskHeatReport: %v", err)
		}
	}
	return bw.Flush()
}
