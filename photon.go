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

// Photon is the subset of a Monte Carlo photon packet's state that the
// repositioner (4.F) touches. The full packet lifecycle (generation,
// propagation, opacity calculation) is out of scope for this core; a
// transport driver owns the rest of the packet and is expected to embed
// or otherwise carry these fields.
type Photon struct {
	X   [3]float64 // position, cm
	Lmn [3]float64 // unit direction

	Freq float64 // frequency, Hz
	W    float64 // statistical weight

	Origin int // source tag

	// Grid is the last-known flat cell index (offset by the owning
	// domain's Nstart). Negative means "not resolved to a cell".
	Grid int

	// Nres is the resonance index: negative means a non-resonant
	// scatter, non-negative indexes the resonant line. Per the
	// "nres as sum type" design note, ScatterKind below is the
	// idiomatic accessor; Nres remains the wire-compatible field.
	Nres int

	Np int // packet serial number
}

// ScatterKind classifies a Photon's last scattering event.
type ScatterKind int

// Recognized scatter kinds.
const (
	NonResonant ScatterKind = iota
	Resonant
)

// Scatter reports the photon's scatter kind and, if resonant, the line
// index (Nres itself).
func (p *Photon) Scatter() (ScatterKind, int) {
	if p.Nres < 0 {
		return NonResonant, -1
	}
	return Resonant, p.Nres
}
