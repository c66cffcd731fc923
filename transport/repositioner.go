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

// Package transport repositions photon packets across cell boundaries
// after a scattering event, so that a resonant scatter does not
// immediately re-trigger the same transition (§4.F).
package transport

import (
	"fmt"

	wind "github.com/radwind/windtransport"
)

// movePhoton advances p a distance ds along its direction cosines,
// mirroring the three-line move_phot helper.
func movePhoton(p *wind.Photon, ds float64) {
	p.X[0] += ds * p.Lmn[0]
	p.X[1] += ds * p.Lmn[1]
	p.X[2] += ds * p.Lmn[2]
}

// Reposition nudges a photon by its current cell's dfudge distance
// after a resonant scatter, so it crosses into the next cell instead
// of re-triggering the transition it just scattered off of. Photons
// from a non-resonant scatter are left untouched. Reposition updates
// p.Grid in place and returns a *wind.PhotonNotInGridError carrying
// the failed lookup code if the photon cannot be resolved to any cell
// at its current position; the photon is then left unchanged.
func Reposition(p *wind.Photon, cells []wind.WindCell, cs wind.CoordSystem) error {
	kind, _ := p.Scatter()
	if kind == wind.NonResonant {
		return nil
	}

	n, err := cs.WhereInGrid(p.X)
	if err != nil || n < 0 {
		wind.Logger.Warnf("reposition: photon not in grid when routine entered %d", n)
		return &wind.PhotonNotInGridError{Code: n}
	}
	p.Grid = n

	movePhoton(p, cs.Dfudge(&cells[n]))
	return nil
}

// RepositionLostDiskPhoton recovers a photon that dfudge accidentally
// pushed through the disc plane. It computes the distance to the disc
// surface along the photon's direction and advances it 99.9% of the
// way there instead, landing just short of the disc rather than
// through it. Non-resonant scatters are left untouched, matching
// Reposition's guard.
func RepositionLostDiskPhoton(p *wind.Photon, cells []wind.WindCell, cs wind.CoordSystem) error {
	kind, _ := p.Scatter()
	if kind == wind.NonResonant {
		return nil
	}

	n, err := cs.WhereInGrid(p.X)
	if err != nil || n < 0 {
		wind.Logger.Warnf("reposition_lost_disk_photon: photon not in grid")
		return fmt.Errorf("transport: RepositionLostDiskPhoton: photon not in grid: %v", err)
	}
	p.Grid = n

	if p.Lmn[2] == 0 {
		return fmt.Errorf("transport: RepositionLostDiskPhoton: photon travels parallel to the disc plane (lmn[2]==0)")
	}

	smax := -p.X[2] / p.Lmn[2] * 0.999
	movePhoton(p, smax)
	return nil
}
