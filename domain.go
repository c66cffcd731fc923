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

import "github.com/ctessum/geom"

// CoordType tags the coordinate system a Domain is expressed in.
type CoordType int

// Recognized coordinate systems. Only Imported/PolarRTheta is
// implemented by this core; the others are named so that a caller's
// parameter file can round-trip the tag, per the Non-goals in spec.md
// ("does not implement a general mesh refinement scheme").
const (
	CoordSpherical CoordType = iota
	CoordCylindrical
	CoordPolarRTheta
	CoordImported
)

// InWind classifies a cell's participation in transport.
type InWind int

// Recognized classifications. After grid materialization only IN_WIND
// (>=0, a resonance-free sentinel reused as "active") and IGNORE survive;
// NotInWind and PartInWind only ever appear in the loader's raw
// classification before materialization collapses them.
const (
	// InWindTrue marks an active cell. The zero value is intentionally
	// "in wind" to mirror the source convention that inwind>=0 is active;
	// see IsActive.
	InWindTrue  InWind = 0
	NotInWind   InWind = -1
	PartInWind  InWind = -2
	Ignore      InWind = -9999
)

// IsActive reports whether a classification marks a cell as eligible
// for photon interaction. Per the invariant in spec.md §3, after
// materialization only InWindTrue-or-greater and Ignore remain, so this
// is simply "is non-negative".
func (w InWind) IsActive() bool { return w >= 0 }

// Domain describes one wind region: its coordinate system, grid
// dimensions, the offset of its cells in the flat runtime array, the
// radial/angular edge arrays, and the bounding box of its in-wind
// cells.
type Domain struct {
	CoordType CoordType

	Ndim int // radial cell count
	Mdim int // angular cell count

	// Nstart is the offset into the flat runtime cell array at which
	// this domain's cells begin.
	Nstart int

	// WindX holds ndim radial cell edges, the inner edge of each radial
	// cell, monotonically increasing.
	WindX []float64
	// WindZ holds mdim angular cell edges (degrees from +z), the lower
	// edge of each angular cell, monotonically increasing.
	WindZ []float64

	Rmin    float64
	Rmax    float64
	RhoMin  float64
	RhoMax  float64
	Zmin    float64
	Zmax    float64

	// WindThetaMin/Max are initialized to zero for imported polar grids.
	WindThetaMin float64
	WindThetaMax float64

	// Cones, if set by MakeCones, bounds the wind volume for the
	// coordinate system's distance-to-boundary calculations. Populated
	// by PolarCoordSystem.MakeCones.
	Cones *ConeBounds
}

// Ndim2 returns ndim*mdim, the number of cells belonging to this domain.
func (d *Domain) Ndim2() int { return d.Ndim * d.Mdim }

// Bounds returns the (ρ, z) bounding box of the domain's in-wind cells
// as a 2-D box, mirroring the (ρ,z) half of the materialized bounding
// geometry; Rmin/Rmax are tracked separately since they bound the
// radial (spherical) extent rather than the cylindrical-ρ/z extent.
func (d *Domain) Bounds() *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: d.RhoMin, Y: d.Zmin},
		Max: geom.Point{X: d.RhoMax, Y: d.Zmax},
	}
}

// ConeBounds holds the conic surfaces installed by a coordinate system's
// MakeCones primitive to bound the wind volume. For the polar grid this
// degenerates to the minimum and maximum angular edges, since the grid
// already runs from the pole to the equator.
type ConeBounds struct {
	ThetaMin float64
	ThetaMax float64
}

// CoordSystem is the capability interface that replaces dispatch on
// CoordType through parallel per-system functions (see DESIGN.md,
// "coordinate-system polymorphism").
type CoordSystem interface {
	// IJToN resolves a domain-relative (i,j) cell index pair to the
	// flat runtime index within the domain (not yet offset by Nstart).
	IJToN(i, j int) (n int, err error)

	// CoordFraction resolves a position to up to 4 neighbour cell
	// indices (domain-relative, not offset by Nstart) and their
	// interpolation weights, which sum to 1.
	CoordFraction(x [3]float64) (nnn []int, frac []float64, err error)

	// MakeCones installs the conic surfaces bounding the wind volume
	// onto the domain.
	MakeCones(d *Domain) error

	// Dfudge returns the geometric nudge distance for a cell.
	Dfudge(cell *WindCell) float64

	// WhereInGrid resolves a position to the flat runtime cell index
	// (offset by Nstart), or a negative value if the position is
	// outside every cell of the grid.
	WhereInGrid(x [3]float64) (int, error)
}
