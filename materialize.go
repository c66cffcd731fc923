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
	"math"
)

// dfudgeFraction is the fraction of a cell's radial width used as the
// default geometric nudge distance. The original fragments reference
// dfudge as "small relative to the cell size" without giving the exact
// formula (calculate_dfudge is an external collaborator); this is this
// reimplementation's choice, recorded in DESIGN.md.
const dfudgeFraction = 1e-6

// Materialize projects an ImportedModel onto the runtime cell array
// for domain dom (§4.D). cells must be sized to cover at least
// [dom.Nstart, dom.Nstart+dom.Ndim2()). ndomIndex is recorded on each
// touched WindCell as its owning-domain back-index.
func Materialize(dom *Domain, m *ImportedModel, cells []WindCell, cs CoordSystem, ndomIndex int) error {
	dom.Ndim = m.Ndim
	dom.Mdim = m.Mdim
	dom.WindX = append([]float64(nil), m.WindX...)
	dom.WindZ = append([]float64(nil), m.WindZ...)
	dom.WindThetaMin, dom.WindThetaMax = 0, 0

	for n := 0; n < m.Ncell; n++ {
		i, j := m.I[n], m.J[n]
		flat, err := cs.IJToN(i, j)
		if err != nil {
			return fmt.Errorf("wind.Materialize: %v", err)
		}
		idx := dom.Nstart + flat
		if idx < 0 || idx >= len(cells) {
			return fmt.Errorf("wind.Materialize: cell index %d out of range for a %d-cell array", idx, len(cells))
		}
		c := &cells[idx]

		c.R = m.R[n]
		c.Theta = m.Theta[n]
		thetaRad := c.Theta * math.Pi / 180
		c.X = [3]float64{c.R * math.Sin(thetaRad), 0, c.R * math.Cos(thetaRad)}
		c.V = [3]float64{m.VX[n], m.VY[n], m.VZ[n]}
		c.Inwind = collapseInwind(m.Inwind[n])

		c.ThetaCen = m.WindMidZ[j]
		c.Rcen = m.WindMidX[i]
		thetaCenRad := c.ThetaCen * math.Pi / 180
		c.Xcen = [3]float64{c.Rcen * math.Sin(thetaCenRad), 0, c.Rcen * math.Cos(thetaCenRad)}

		c.Ndom = ndomIndex
		// WindX holds the inner edge of each radial cell, so the
		// outermost cell takes the final edge spacing as its width, the
		// same extrapolation WindMidX uses.
		width := 0.0
		if i+1 < len(dom.WindX) {
			width = dom.WindX[i+1] - dom.WindX[i]
		} else if i > 0 {
			width = dom.WindX[i] - dom.WindX[i-1]
		}
		c.Dfudge = width * dfudgeFraction
	}

	materializeBoundingBox(dom, cells)

	if err := cs.MakeCones(dom); err != nil {
		return fmt.Errorf("wind.Materialize: %v", err)
	}
	return nil
}

// materializeBoundingBox computes rmin/rmax/rho_min/rho_max/zmin/zmax
// over dom's in-wind cells, per §4.D. A cell whose outer-radial
// neighbour (or the cell one angular step beyond it) falls outside
// the domain's cell array indicates the input file was missing its
// required guard cells; this is logged as a non-fatal boundary
// warning and that cell is simply excluded from the box, rather than
// the undefined out-of-bounds read the C original performs.
func materializeBoundingBox(dom *Domain, cells []WindCell) {
	ndim2 := dom.Ndim2()
	rmax, rhoMax, zmax := 0.0, 0.0, 0.0
	rmin, rhoMin, zmin := math.MaxFloat64, math.MaxFloat64, math.MaxFloat64

	for n := 0; n < ndim2; n++ {
		c := &cells[dom.Nstart+n]
		if !c.Inwind.IsActive() {
			continue
		}

		rInner := length(c.X)
		nOuter := n + dom.Mdim

		if nOuter+1 >= ndim2 {
			Logger.Warnf("wind: materialize: trying to access cell %d > %d outside grid (missing guard cells)", nOuter+1, ndim2)
			continue
		}

		outer := &cells[dom.Nstart+nOuter]
		outerPlus1 := &cells[dom.Nstart+nOuter+1]
		nPlus1 := &cells[dom.Nstart+n+1]

		rOuter := length(outer.X)
		if outerPlus1.X[0] > rhoMax {
			rhoMax = outerPlus1.X[0]
		}
		if outer.X[2] > zmax {
			zmax = outer.X[2]
		}
		if nPlus1.X[2] < zmin && nPlus1.X[2] > 0 {
			zmin = nPlus1.X[2]
		}
		if rOuter > rmax {
			rmax = rOuter
		}
		if rhoMin > c.X[0] {
			rhoMin = c.X[0]
		}
		if rmin > rInner {
			rmin = rInner
		}
	}

	dom.Rmin, dom.Rmax = rmin, rmax
	dom.RhoMin, dom.RhoMax = rhoMin, rhoMax
	dom.Zmax = zmax
	dom.Zmin = zmin

	Logger.Infof("Imported:    rmin    rmax  %e %e", dom.Rmin, dom.Rmax)
	Logger.Infof("Imported:    zmin    zmax  %e %e", dom.Zmin, dom.Zmax)
	Logger.Infof("Imported: rho_min rho_max  %e %e", dom.RhoMin, dom.RhoMax)

	b := dom.Bounds()
	Logger.Infof("Imported: (rho,z) bounds  min=(%e,%e) max=(%e,%e)", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}
