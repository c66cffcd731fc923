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

// Physical constants used when populating the default geometry.
const (
	// MSol is one solar mass in grams.
	MSol = 1.989e33
	// YR is one year in seconds.
	YR = 3.1556926e7
)

// SpecType enumerates the radiation spectrum shapes that a source can emit.
type SpecType int

// Recognized spectrum types.
const (
	SpecTypeBB  SpecType = iota // blackbody
	SpecTypePow                 // power law, used for the AGN ionizing spectrum
)

// IonizMode enumerates the ionization-balance solver selection.
type IonizMode int

// Recognized ionization modes. Only the tag is carried here; the core
// does not implement ionization-balance solving (see Non-goals).
const (
	IonizModeML93 IonizMode = iota
)

// LineMode enumerates the line-transfer treatment.
type LineMode int

// Recognized line modes.
const (
	// LineModeEscapeProbabilities is the default: lines are treated with
	// escape probabilities rather than a full Sobolev or scattering solution.
	LineModeEscapeProbabilities LineMode = iota
)

// RadiationSources records which components of the system radiate.
type RadiationSources struct {
	Star         bool
	Disk         bool
	BoundaryLayer bool
	Wind         bool
}

// SpectrumTypes holds the spectrum-shape selection for every radiating
// component and its ionizing counterpart.
type SpectrumTypes struct {
	Star     SpecType
	StarIon  SpecType
	Disk     SpecType
	DiskIon  SpecType
	BL       SpecType
	BLIon    SpecType
	AGNIon   SpecType // defaults to SpecTypePow rather than SpecTypeBB
}

// Geometry is the process-wide record of defaults that every downstream
// routine in the core presumes has been initialized: coordinate axes,
// star/disk/wind radii, temperatures, and radiation-source flags.
//
// The source this module is grounded on keeps this as global mutable
// state (C's "geo" struct). Per the explicit-configuration decision
// recorded in DESIGN.md, this reimplementation instead hands callers an explicit,
// caller-owned Geometry value: downstream components take it as a
// read-only reference, and only the bootstrap phase (NewDefaultGeometry,
// or a parameter-file loader external to this core) is expected to
// mutate it.
type Geometry struct {
	// Lengths in cm, masses in grams, temperatures in K.
	Rmax      float64 // outer edge of the computational domain
	Rstar     float64 // stellar/WD radius
	Mstar     float64 // central object mass
	DiskMdot  float64 // disk accretion rate, g/s
	Tstar     float64 // stellar effective temperature
	Twind     float64 // wind blackbody temperature used for some diagnostics
	TBL       float64 // boundary-layer temperature
	DiskType  int     // 1 implies existence of a disk for purposes of absorption
	DiskRad   float64 // outer disk radius

	IonizMode IonizMode
	LineMode  LineMode

	Sources   RadiationSources
	Spectra   SpectrumTypes

	// Coordinate-axis unit vectors.
	XAxis [3]float64
	YAxis [3]float64
	ZAxis [3]float64

	// Macro-atom aggregate totals, written externally by the emissivity
	// kernel and read by the reporter (4.G).
	FMatom float64
	FKpkt  float64
}

// NewDefaultGeometry returns the canonical bootstrap Geometry for the
// default cataclysmic-variable profile, matching the values fixed at
// startup by the original implementation's init_geo routine.
func NewDefaultGeometry() *Geometry {
	return &Geometry{
		Rmax:     1e11,
		Rstar:    7e8,
		Mstar:    0.8 * MSol,
		DiskMdot: 1e-8 * MSol / YR,
		Tstar:    40000,
		Twind:    40000,
		TBL:      100000,
		DiskType: 1,
		DiskRad:  2.4e10,

		IonizMode: IonizModeML93,
		LineMode:  LineModeEscapeProbabilities,

		Sources: RadiationSources{
			Star: true,
			Disk: true,
		},
		Spectra: SpectrumTypes{
			Star:    SpecTypeBB,
			StarIon: SpecTypeBB,
			Disk:    SpecTypeBB,
			DiskIon: SpecTypeBB,
			BL:      SpecTypeBB,
			BLIon:   SpecTypeBB,
			AGNIon:  SpecTypePow,
		},

		XAxis: [3]float64{1, 0, 0},
		YAxis: [3]float64{0, 1, 0},
		ZAxis: [3]float64{0, 0, 1},
	}
}

// Modes is a flat bundle of diagnostic and advanced-behaviour flags.
// All fields default to false except KeepPhotoabs.
type Modes struct {
	IAdvanced             bool
	SaveCellStats         bool
	ISpy                  bool
	KeepIoncycleWindsaves bool
	TrackResonantScatters bool
	SaveExtractPhotons    bool
	PrintWindradSummary   bool
	AdjustGrid            bool
	DiagOnOff             bool
	UseDebug              bool
	PrintDVDSInfo         bool
	QuitAfterInputs       bool
	FixedTemp             bool
	KeepPhotoabs          bool
}

// NewDefaultModes returns the default Modes bundle.
func NewDefaultModes() *Modes {
	return &Modes{KeepPhotoabs: true}
}
