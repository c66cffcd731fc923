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

import "github.com/ctessum/sparse"

// DenseGrid is a thin (i,j)-indexed wrapper around sparse.DenseArray,
// used for gridded per-cell scalar fields that are naturally dense
// (e.g. imported-model density), the same storage CTMData uses for
// imported meteorology variables.
type DenseGrid struct {
	arr *sparse.DenseArray
}

// NewDenseGrid allocates a zeroed ndim x mdim grid.
func NewDenseGrid(ndim, mdim int) *DenseGrid {
	return &DenseGrid{arr: sparse.ZerosDense(ndim, mdim)}
}

// Get returns the value at (i,j).
func (g *DenseGrid) Get(i, j int) float64 { return g.arr.Get(i, j) }

// Set stores val at (i,j).
func (g *DenseGrid) Set(val float64, i, j int) { g.arr.Set(val, i, j) }

// Shape returns [ndim, mdim].
func (g *DenseGrid) Shape() []int { return g.arr.GetShape() }
