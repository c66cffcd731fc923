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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// NdimMax2D is the compile-time cap on the number of cells an imported
// polar grid may hold. The loader fails fatally if an input file would
// exceed it.
const NdimMax2D = 100000

// DefaultImportTemperature is assigned to t_e when a 9-column input
// record carries no temperature information; t_r then defaults to
// 1.1*DefaultImportTemperature. The value is a conventional baseline
// wind electron temperature; the original fragments reference the
// constant but do not define it (see DESIGN.md, Open Questions).
const DefaultImportTemperature = 10000.0

// Field-count thresholds for the three-valued policy in §4.C.
const (
	readNoTemp2D       = 9
	readElectronTemp2D = 10
	readBothTemp2D     = 11
)

// ImportedModel is the flat, immutable-after-load representation of one
// domain's tabulated (i, j, inwind, r, theta, vx, vy, vz, rho[, t_e[, t_r]])
// wind model, as produced by LoadImportedRTheta.
type ImportedModel struct {
	Ndim  int
	Mdim  int
	Ncell int

	I      []int
	J      []int
	Inwind []InWind
	R      []float64
	Theta  []float64
	VX     []float64
	VY     []float64
	VZ     []float64
	TE     []float64
	TR     []float64

	// rawRho accumulates cell-centre density in file order during
	// parsing, before MassRho reshapes it into a dense (ndim x mdim) grid.
	rawRho []float64

	// MassRho is the cell-centre density, g/cm^3, stored as a dense
	// (ndim x mdim) grid indexed [i][j] via Get/Set rather than a flat
	// slice, mirroring the gridded-variable storage CTMData uses for
	// imported meteorology fields.
	MassRho *DenseGrid

	// WindX/WindZ are the ndim/mdim cell edges recovered from the
	// j==0/i==0 records respectively, in file order.
	WindX []float64
	WindZ []float64

	// WindMidX/WindMidZ are the cell-centre coordinates derived from
	// the edges.
	WindMidX []float64
	WindMidZ []float64
}

// LoadImportedRTheta reads a tabulated polar (r,theta) wind model from
// path. It returns an *ImportedModel on success, or a fatal error
// (missing file, dimension mismatch, over-capacity) per §4.C/§7. The
// file handle is closed on every exit path.
func LoadImportedRTheta(path string) (*ImportedModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wind.LoadImportedRTheta: %v", err)
	}
	defer f.Close()
	return readImportedRTheta(f)
}

func readImportedRTheta(r io.Reader) (*ImportedModel, error) {
	m := &ImportedModel{}

	var lastI, lastJ int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		n := len(fields)
		if n < readNoTemp2D {
			continue // comment/blank tolerance
		}

		icell, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		jcell, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		inwind, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		rVal, err1 := strconv.ParseFloat(fields[3], 64)
		theta, err2 := strconv.ParseFloat(fields[4], 64)
		vx, err3 := strconv.ParseFloat(fields[5], 64)
		vy, err4 := strconv.ParseFloat(fields[6], 64)
		vz, err5 := strconv.ParseFloat(fields[7], 64)
		rho, err6 := strconv.ParseFloat(fields[8], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil || err6 != nil {
			continue
		}

		m.I = append(m.I, icell)
		m.J = append(m.J, jcell)
		m.Inwind = append(m.Inwind, InWind(inwind))
		m.R = append(m.R, rVal)
		m.Theta = append(m.Theta, theta)
		m.VX = append(m.VX, vx)
		m.VY = append(m.VY, vy)
		m.VZ = append(m.VZ, vz)
		m.rawRho = append(m.rawRho, rho)

		switch {
		case n >= readBothTemp2D:
			te, errTe := strconv.ParseFloat(fields[9], 64)
			tr, errTr := strconv.ParseFloat(fields[10], 64)
			if errTe != nil || errTr != nil {
				te, tr = DefaultImportTemperature, 1.1*DefaultImportTemperature
			}
			m.TE = append(m.TE, te)
			m.TR = append(m.TR, tr)
		case n == readElectronTemp2D:
			te, errTe := strconv.ParseFloat(fields[9], 64)
			if errTe != nil {
				te = DefaultImportTemperature
			}
			m.TE = append(m.TE, te)
			m.TR = append(m.TR, 1.1*te)
		default:
			m.TE = append(m.TE, DefaultImportTemperature)
			m.TR = append(m.TR, 1.1*DefaultImportTemperature)
		}

		lastI, lastJ = icell, jcell
		m.Ncell++

		if m.Ncell > NdimMax2D {
			return nil, fmt.Errorf("wind.LoadImportedRTheta: trying to read in more grid points than allowed (%d)", NdimMax2D)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wind.LoadImportedRTheta: %v", err)
	}

	m.Ndim = lastI + 1
	m.Mdim = lastJ + 1
	if m.Ncell != m.Ndim*m.Mdim {
		return nil, fmt.Errorf("wind.LoadImportedRTheta: the dimensions of the imported grid seem wrong %d x %d != %d",
			m.Ndim, m.Mdim, m.Ncell)
	}

	m.deriveEdgesAndCenters()
	m.buildMassRho()

	return m, nil
}

func (m *ImportedModel) deriveEdgesAndCenters() {
	for n := 0; n < m.Ncell; n++ {
		if m.I[n] == 0 {
			m.WindZ = append(m.WindZ, m.Theta[n])
		}
		if m.J[n] == 0 {
			m.WindX = append(m.WindX, m.R[n])
		}
	}

	m.WindMidZ = make([]float64, len(m.WindZ))
	for k := 0; k < len(m.WindZ)-1; k++ {
		m.WindMidZ[k] = 0.5 * (m.WindZ[k] + m.WindZ[k+1])
	}
	if last := len(m.WindZ) - 1; last >= 1 {
		delta := m.WindZ[last] - m.WindZ[last-1]
		m.WindMidZ[last] = m.WindZ[last] + 0.5*delta
	}

	m.WindMidX = make([]float64, len(m.WindX))
	for k := 0; k < len(m.WindX)-1; k++ {
		m.WindMidX[k] = 0.5 * (m.WindX[k] + m.WindX[k+1])
	}
	if last := len(m.WindX) - 1; last >= 1 {
		delta := m.WindX[last] - m.WindX[last-1]
		m.WindMidX[last] = m.WindX[last] + 0.5*delta
	}
}

func (m *ImportedModel) buildMassRho() {
	m.MassRho = NewDenseGrid(m.Ndim, m.Mdim)
	for n := 0; n < m.Ncell; n++ {
		m.MassRho.Set(m.rawRho[n], m.I[n], m.J[n])
	}
}

// MassRhoAt returns the cell-centre density at domain-relative indices
// (i,j).
func (m *ImportedModel) MassRhoAt(i, j int) float64 {
	return m.MassRho.Get(i, j)
}

// WriteImportedModel writes m back out in the loader's 11-column
// format, one cell per line, in (i,j) flat order. This is the inverse
// of LoadImportedRTheta, supporting the round-trip testable property
// in §8 (the original C fragment this core is grounded on has no
// writer; one is supplied here because the property requires it).
func WriteImportedModel(w io.Writer, m *ImportedModel) error {
	bw := bufio.NewWriter(w)
	for n := 0; n < m.Ncell; n++ {
		_, err := fmt.Fprintf(bw, "%d %d %d %.10e %.10e %.10e %.10e %.10e %.10e %.10e %.10e\n",
			m.I[n], m.J[n], int(m.Inwind[n]), m.R[n], m.Theta[n],
			m.VX[n], m.VY[n], m.VZ[n], m.MassRhoAt(m.I[n], m.J[n]), m.TE[n], m.TR[n])
		if err != nil {
			return fmt.Errorf("wind.WriteImportedModel: %v", err)
		}
	}
	return bw.Flush()
}
