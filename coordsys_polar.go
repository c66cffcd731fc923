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

// PolarCoordSystem is the CoordSystem implementation for the imported
// (r,theta) grid (§4.C/§4.D/§4.E). It is the one coordinate system this
// core actually implements; CoordSpherical and CoordCylindrical are
// named in the CoordType enum but have no implementation here (see
// Non-goals).
type PolarCoordSystem struct {
	Dom   *Domain
	Model *ImportedModel
	Cells []WindCell // shared flat runtime array, offset by Dom.Nstart
}

var _ CoordSystem = (*PolarCoordSystem)(nil)

// IJToN resolves a domain-relative (i,j) index pair to the flat,
// domain-relative cell index i*mdim+j. This mirrors the file's own
// record order: i (radial) varies slowly, j (angular) varies quickly.
func (p *PolarCoordSystem) IJToN(i, j int) (int, error) {
	if i < 0 || i >= p.Dom.Ndim || j < 0 || j >= p.Dom.Mdim {
		return 0, fmt.Errorf("wind: ij_to_n: (%d,%d) outside %dx%d grid", i, j, p.Dom.Ndim, p.Dom.Mdim)
	}
	return i*p.Dom.Mdim + j, nil
}

// MakeCones installs the conic boundary surfaces for the polar grid.
// The grid already runs from near the pole to the equator, so the
// cones degenerate to the domain's angular edge extremes.
func (p *PolarCoordSystem) MakeCones(d *Domain) error {
	if len(d.WindZ) < 2 {
		return fmt.Errorf("wind: make_cones: domain has fewer than 2 angular edges")
	}
	d.Cones = &ConeBounds{
		ThetaMin: d.WindZ[0],
		ThetaMax: d.WindZ[len(d.WindZ)-1],
	}
	return nil
}

// Dfudge returns the cell-local nudge distance published at
// materialization time.
func (p *PolarCoordSystem) Dfudge(cell *WindCell) float64 {
	return cell.Dfudge
}

// positionToRTheta converts a Cartesian position to (r, theta-from-+z
// in degrees), following the convention used throughout this core:
// theta = acos(|z|/r) * 180/pi, restricting theta to [0,90] by folding
// on the disk plane.
func positionToRTheta(x [3]float64) (r, theta float64) {
	r = length(x)
	if r == 0 {
		return 0, 0
	}
	z := math.Abs(x[2])
	theta = math.Acos(z/r) * 180 / math.Pi
	return r, theta
}

// edgeBracket returns the greatest index k such that edges[k] < val,
// or -1 if val is below every edge. This is the linear scan described
// in §4.E's density lookup, generalized for reuse by WhereInGrid.
func edgeBracket(edges []float64, val float64) int {
	k := -1
	for i, e := range edges {
		if e < val {
			k = i
		} else {
			break
		}
	}
	return k
}

// WhereInGrid resolves a position to the flat runtime cell index
// (offset by Dom.Nstart) containing it, or a negative code if x lies
// at or below the innermost radial edge or the smallest angular edge.
// Positions beyond the last radial or angular edge resolve to the
// outermost cell along that axis.
func (p *PolarCoordSystem) WhereInGrid(x [3]float64) (int, error) {
	r, theta := positionToRTheta(x)

	j := edgeBracket(p.Dom.WindX, r) // radial edge index
	if j < 0 || j >= p.Dom.Ndim {
		return -1, fmt.Errorf("wind: where_in_grid: r=%g outside radial grid", r)
	}
	i := edgeBracket(p.Dom.WindZ, theta) // angular edge index
	if i < 0 || i >= p.Dom.Mdim {
		return -2, fmt.Errorf("wind: where_in_grid: theta=%g outside angular grid", theta)
	}

	n, err := p.IJToN(j, i)
	if err != nil {
		return -3, err
	}
	return p.Dom.Nstart + n, nil
}

// CoordFraction resolves x to up to 4 neighbouring cell-centre indices
// (domain-relative) and bilinear weights summing to 1, interpolating
// in the cell-centre basis (WindMidX x WindMidZ) of the imported
// model. Positions outside the centre grid clamp to the nearest edge
// cell, so the returned weight vector always sums to 1 and nelem is
// always >= 1.
func (p *PolarCoordSystem) CoordFraction(x [3]float64) ([]int, []float64, error) {
	r, theta := positionToRTheta(x)

	midX := p.Model.WindMidX
	midZ := p.Model.WindMidZ
	if len(midX) == 0 || len(midZ) == 0 {
		return nil, nil, fmt.Errorf("wind: coord_fraction: model has no cell centres")
	}

	i0, fi := bracketFraction(midX, r)
	j0, fj := bracketFraction(midZ, theta)

	type corner struct {
		i, j int
		w    float64
	}
	corners := []corner{
		{i0, j0, (1 - fi) * (1 - fj)},
		{i0 + 1, j0, fi * (1 - fj)},
		{i0, j0 + 1, (1 - fi) * fj},
		{i0 + 1, j0 + 1, fi * fj},
	}

	var nnn []int
	var frac []float64
	for _, c := range corners {
		if c.w <= 0 {
			continue
		}
		if c.i < 0 || c.i >= p.Dom.Ndim || c.j < 0 || c.j >= p.Dom.Mdim {
			continue
		}
		n, err := p.IJToN(c.i, c.j)
		if err != nil {
			continue
		}
		nnn = append(nnn, n)
		frac = append(frac, c.w)
	}

	if len(nnn) == 0 {
		// x fell entirely outside the centre grid; clamp to the
		// single nearest corner.
		ci := clampIndex(i0, p.Dom.Ndim)
		cj := clampIndex(j0, p.Dom.Mdim)
		n, err := p.IJToN(ci, cj)
		if err != nil {
			return nil, nil, err
		}
		return []int{n}, []float64{1}, nil
	}

	// Renormalize in case some corners were clamped out.
	var sum float64
	for _, w := range frac {
		sum += w
	}
	if sum > 0 {
		for i := range frac {
			frac[i] /= sum
		}
	}

	return nnn, frac, nil
}

// bracketFraction finds the bracketing interval [centres[k], centres[k+1]]
// containing val and returns k and the fractional position within it
// (0 at centres[k], 1 at centres[k+1]). val outside the array clamps
// to the nearest end interval, with a fraction <=0 or >=1 accordingly.
func bracketFraction(centres []float64, val float64) (int, float64) {
	n := len(centres)
	if n == 1 {
		return 0, 0
	}
	if val <= centres[0] {
		return 0, 0
	}
	if val >= centres[n-1] {
		return n - 2, 1
	}
	for k := 0; k < n-1; k++ {
		if val >= centres[k] && val <= centres[k+1] {
			span := centres[k+1] - centres[k]
			if span == 0 {
				return k, 0
			}
			return k, (val - centres[k]) / span
		}
	}
	return n - 2, 1
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
