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
	"fmt"

	"github.com/gonum/floats"
)

// Velocity returns the wind speed and velocity vector at position x,
// found by interpolating the runtime cell array's per-cell velocities
// over the weights CoordFraction produces (§4.E). This mirrors
// velocity_rtheta's weighted blend of the bracketing cells' velocity
// vectors rather than a single nearest-cell lookup.
func Velocity(cells []WindCell, cs CoordSystem, nstart int, x [3]float64) (speed float64, v [3]float64, err error) {
	nnn, frac, err := cs.CoordFraction(x)
	if err != nil {
		return 0, v, err
	}

	for k, n := range nnn {
		idx := nstart + n
		if idx < 0 || idx >= len(cells) {
			return 0, v, fmt.Errorf("wind: Velocity: cell index %d out of range", idx)
		}
		cv := cells[idx].V
		floats.AddScaled(v[:], frac[k], cv[:])
	}

	speed = length(v)
	return speed, v, nil
}

// Density returns the mass density at position x by locating the
// nearest bracketing (i,j) cell in the imported model's edge arrays
// and reading its MassRho entry directly, following rho_rtheta's
// nearest-cell (not interpolated) lookup.
func Density(m *ImportedModel, x [3]float64) (float64, error) {
	r, theta := positionToRTheta(x)

	i := edgeBracket(m.WindX, r)
	if i < 0 || i >= m.Ndim {
		return 0, fmt.Errorf("wind: Density: r=%g outside radial grid", r)
	}
	j := edgeBracket(m.WindZ, theta)
	if j < 0 || j >= m.Mdim {
		return 0, fmt.Errorf("wind: Density: theta=%g outside angular grid", theta)
	}

	return m.MassRhoAt(i, j), nil
}
