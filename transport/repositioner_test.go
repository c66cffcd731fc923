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

package transport

import (
	"fmt"
	"testing"

	wind "github.com/radwind/windtransport"
)

// fakeCoordSystem is a minimal CoordSystem stub for repositioner tests:
// it resolves every position to gridIdx (or fails when failIn is set)
// and carries a fixed dfudge.
type fakeCoordSystem struct {
	dfudge  float64
	gridIdx int
	failIn  bool
}

func (f *fakeCoordSystem) IJToN(i, j int) (int, error) { return 0, nil }
func (f *fakeCoordSystem) CoordFraction(x [3]float64) ([]int, []float64, error) {
	return []int{0}, []float64{1}, nil
}
func (f *fakeCoordSystem) MakeCones(d *wind.Domain) error { return nil }
func (f *fakeCoordSystem) Dfudge(cell *wind.WindCell) float64 { return f.dfudge }
func (f *fakeCoordSystem) WhereInGrid(x [3]float64) (int, error) {
	if f.failIn {
		return -1, fmt.Errorf("transport: fakeCoordSystem: photon not in grid")
	}
	return f.gridIdx, nil
}

func TestReposition_NonResonantIsNoOp(t *testing.T) {
	p := &wind.Photon{X: [3]float64{1, 2, 3}, Lmn: [3]float64{1, 0, 0}, Nres: -1}
	cells := make([]wind.WindCell, 1)
	cs := &fakeCoordSystem{dfudge: 1e5, gridIdx: 0}

	want := p.X
	if err := Reposition(p, cells, cs); err != nil {
		t.Fatalf("Reposition: %v", err)
	}
	if p.X != want {
		t.Errorf("non-resonant scatter moved the photon: got %v, want %v", p.X, want)
	}
}

func TestReposition_ResonantAdvancesByDfudge(t *testing.T) {
	p := &wind.Photon{X: [3]float64{1, 2, 3}, Lmn: [3]float64{1, 0, 0}, Nres: 42}
	cells := make([]wind.WindCell, 1)
	cs := &fakeCoordSystem{dfudge: 1e5, gridIdx: 0}

	if err := Reposition(p, cells, cs); err != nil {
		t.Fatalf("Reposition: %v", err)
	}
	want := 1 + 1e5
	if p.X[0] != want {
		t.Errorf("got x[0]=%g, want %g", p.X[0], want)
	}
	if p.X[1] != 2 || p.X[2] != 3 {
		t.Errorf("resonant advance perturbed non-travel axes: %v", p.X)
	}
}

func TestRepositionLostDiskPhoton_LandsShortOfDisk(t *testing.T) {
	p := &wind.Photon{X: [3]float64{0, 0, -10}, Lmn: [3]float64{0, 0, -1}, Nres: 7}
	cells := make([]wind.WindCell, 1)
	cs := &fakeCoordSystem{dfudge: 1e5, gridIdx: 0}

	if err := RepositionLostDiskPhoton(p, cells, cs); err != nil {
		t.Fatalf("RepositionLostDiskPhoton: %v", err)
	}

	// smax = -x[2]/lmn[2] * 0.999 = -(-10)/(-1) * 0.999 = -9.99
	// z_new = -10 + smax*lmn[2] = -10 + (-9.99)*(-1) = -0.01
	wantZ := -0.01
	if diff := p.X[2] - wantZ; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("got z=%g, want %g (99.9%% of the way to the disc, not through it)", p.X[2], wantZ)
	}
	if p.X[2] >= 0 {
		t.Errorf("rescue overshot the disc plane: z=%g", p.X[2])
	}
}

func TestRepositionLostDiskPhoton_ParallelToDiscIsAnError(t *testing.T) {
	p := &wind.Photon{X: [3]float64{0, 0, -10}, Lmn: [3]float64{1, 0, 0}, Nres: 7}
	cells := make([]wind.WindCell, 1)
	cs := &fakeCoordSystem{dfudge: 1e5, gridIdx: 0}

	if err := RepositionLostDiskPhoton(p, cells, cs); err == nil {
		t.Error("expected an error for lmn[2]==0")
	}
}
