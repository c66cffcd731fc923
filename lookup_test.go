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

import "testing"

func TestDensity_NearestCellLookup(t *testing.T) {
	m := buildUniformModel(t, 3, 3)
	// Cell (1,1) was built with rho=1e-14 uniformly in buildUniformModel.
	x := [3]float64{1.5e10 * 1.4, 0, 1.5e10 * 1.4} // roughly in the (1,1) bracket
	rho, err := Density(m, x)
	if err != nil {
		t.Fatalf("Density: %v", err)
	}
	if rho != 1e-14 {
		t.Errorf("got rho=%g, want 1e-14", rho)
	}
}

func TestVelocity_InterpolatesOverCoordFraction(t *testing.T) {
	m := buildUniformModel(t, 3, 3)
	dom := &Domain{CoordType: CoordImported}
	cells := make([]WindCell, m.Ncell)
	cs := &PolarCoordSystem{Dom: dom, Model: m}
	if err := Materialize(dom, m, cells, cs, 0); err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	x := [3]float64{1.5e10, 0, 1.5e10}
	speed, v, err := Velocity(cells, cs, dom.Nstart, x)
	if err != nil {
		t.Fatalf("Velocity: %v", err)
	}
	if speed <= 0 {
		t.Errorf("got non-positive speed %g for a uniform outflow field", speed)
	}
	if v[1] != 0 {
		t.Errorf("got v[1]=%g, want 0 (uniform model has no out-of-plane velocity)", v[1])
	}
}
