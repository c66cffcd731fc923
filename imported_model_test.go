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
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// grid3x3 builds a 3 (radial) x 3 (angular) uniform polar grid as a
// 9-line tabulated file, one line per cell, in (i,j) flat order, with
// full 11-column records.
func grid3x3() string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r := float64(i+1) * 1e10
			theta := float64(j+1) * 20
			fmt.Fprintf(&b, "%d %d %d %e %e %e %e %e %e %e %e\n",
				i, j, 0, r, theta, 1e7, 0.0, 1e7, 1e-14*float64(i+1), 50000.0, 55000.0)
		}
	}
	return b.String()
}

func TestReadImportedRTheta_GridDimensions(t *testing.T) {
	m, err := readImportedRTheta(strings.NewReader(grid3x3()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Ndim != 3 || m.Mdim != 3 {
		t.Fatalf("got ndim=%d mdim=%d, want 3x3", m.Ndim, m.Mdim)
	}
	if m.Ncell != m.Ndim*m.Mdim {
		t.Fatalf("ncell=%d != ndim*mdim=%d", m.Ncell, m.Ndim*m.Mdim)
	}
	if len(m.WindX) != m.Ndim {
		t.Errorf("got %d radial edges, want %d (one per j==0 record)", len(m.WindX), m.Ndim)
	}
}

func TestReadImportedRTheta_EdgesStrictlyMonotonic(t *testing.T) {
	m, err := readImportedRTheta(strings.NewReader(grid3x3()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k := 1; k < len(m.WindX); k++ {
		if m.WindX[k] <= m.WindX[k-1] {
			t.Errorf("WindX not strictly increasing at %d: %v", k, m.WindX)
		}
	}
	for k := 1; k < len(m.WindZ); k++ {
		if m.WindZ[k] <= m.WindZ[k-1] {
			t.Errorf("WindZ not strictly increasing at %d: %v", k, m.WindZ)
		}
	}
}

func TestReadImportedRTheta_CellCentreBetweenEdges(t *testing.T) {
	m, err := readImportedRTheta(strings.NewReader(grid3x3()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k := 0; k < len(m.WindMidX)-1; k++ {
		if !(m.WindMidX[k] > m.WindX[k] && m.WindMidX[k] < m.WindX[k+1]) {
			t.Errorf("WindMidX[%d]=%g not between edges %g and %g", k, m.WindMidX[k], m.WindX[k], m.WindX[k+1])
		}
	}
}

func TestReadImportedRTheta_DimensionMismatch(t *testing.T) {
	// Drop the last line so ncell != ndim*mdim.
	lines := strings.Split(strings.TrimRight(grid3x3(), "\n"), "\n")
	bad := strings.Join(lines[:len(lines)-1], "\n") + "\n"
	if _, err := readImportedRTheta(strings.NewReader(bad)); err == nil {
		t.Fatal("expected a dimension-mismatch error, got nil")
	}
}

func TestReadImportedRTheta_NineColumnDefaultsTemperature(t *testing.T) {
	src := "0 0 0 1.0e10 20.0 1e7 0.0 1e7 1e-14\n"
	m, err := readImportedRTheta(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TE[0] != DefaultImportTemperature {
		t.Errorf("t_e = %g, want default %g", m.TE[0], DefaultImportTemperature)
	}
	if m.TR[0] != 1.1*DefaultImportTemperature {
		t.Errorf("t_r = %g, want 1.1x default %g", m.TR[0], 1.1*DefaultImportTemperature)
	}
}

func TestWriteImportedModel_RoundTrip(t *testing.T) {
	m, err := readImportedRTheta(strings.NewReader(grid3x3()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteImportedModel(&buf, m); err != nil {
		t.Fatalf("WriteImportedModel: %v", err)
	}

	m2, err := readImportedRTheta(&buf)
	if err != nil {
		t.Fatalf("re-reading written model: %v", err)
	}

	if m2.Ndim != m.Ndim || m2.Mdim != m.Mdim || m2.Ncell != m.Ncell {
		t.Fatalf("round trip changed dimensions: got %dx%d (%d cells), want %dx%d (%d cells)",
			m2.Ndim, m2.Mdim, m2.Ncell, m.Ndim, m.Mdim, m.Ncell)
	}
	for n := range m.R {
		if m2.R[n] != m.R[n] || m2.Theta[n] != m.Theta[n] {
			t.Errorf("cell %d: r/theta changed across round trip: got (%g,%g), want (%g,%g)",
				n, m2.R[n], m2.Theta[n], m.R[n], m.Theta[n])
		}
	}
}
