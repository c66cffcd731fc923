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

// WindCell is a runtime wind grid cell. The imported-model loader (4.C)
// fills an ImportedModel; materialization (4.D) copies it into an
// array of WindCell, one flat array per process, indexed by
// Domain.Nstart + (i*mdim+j).
type WindCell struct {
	R     float64 // edge-corner radius, cm
	Theta float64 // edge-corner angle from +z, degrees

	X [3]float64 // Cartesian edge corner; X[1]==0 by axisymmetry
	V [3]float64 // Cartesian velocity at the edge corner, cm/s

	Rcen     float64    // cell-centre radius, cm
	ThetaCen float64    // cell-centre angle, degrees
	Xcen     [3]float64 // cell-centre Cartesian position

	Inwind InWind // classification; only active (>=0) or Ignore survive materialization

	// Dfudge is a cell-local geometric nudge distance used by the
	// photon repositioner: small relative to the cell size, strictly
	// positive.
	Dfudge float64

	Ndom int // back-index to owning domain

	// Macro-atom counters, indexed by level. Written by an external
	// emissivity kernel (out of scope, §1) and read by the reporter.
	MatomAbs   []float64
	MatomEmiss []float64
	KpktAbs    float64
	KpktEmiss  float64
}
