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
	"encoding/gob"
	"fmt"
	"io"
)

// WindsaveDataVersion is bumped whenever WindSave's shape changes in a
// way that would make an old .windsave file unreadable. Load rejects a
// file carrying a different version (§4.H).
const WindsaveDataVersion = "wind-80.1"

// WindSave is the restart-format snapshot of a run's geometry, domains
// and cell array, mirroring the teacher's versionCells wrapper.
type WindSave struct {
	DataVersion string
	Geo         Geometry
	Modes       Modes
	Domains     []Domain
	Cells       []WindCell
}

// SaveWindsave gob-encodes geo, modes, domains and cells as a WindSave
// to w (the ".windsave" restart file named by the -r flag in §6).
func SaveWindsave(w io.Writer, geo *Geometry, modes *Modes, domains []Domain, cells []WindCell) error {
	if len(cells) == 0 {
		return fmt.Errorf("wind.SaveWindsave: no grid cells to save")
	}
	ws := WindSave{
		DataVersion: WindsaveDataVersion,
		Geo:         *geo,
		Modes:       *modes,
		Domains:     domains,
		Cells:       cells,
	}
	e := gob.NewEncoder(w)
	if err := e.Encode(ws); err != nil {
		return fmt.Errorf("wind.SaveWindsave: %v", err)
	}
	return nil
}

// LoadWindsave decodes a previously-saved restart file. A version
// mismatch is returned as an error rather than silently accepted,
// since the cell layout it decodes into may not match the running
// binary's expectations.
func LoadWindsave(r io.Reader) (*WindSave, error) {
	dec := gob.NewDecoder(r)
	var ws WindSave
	if err := dec.Decode(&ws); err != nil {
		return nil, fmt.Errorf("wind.LoadWindsave: %v", err)
	}
	if ws.DataVersion != WindsaveDataVersion {
		return nil, fmt.Errorf("wind.LoadWindsave: windsave data version %q is not compatible with required version %q",
			ws.DataVersion, WindsaveDataVersion)
	}
	return &ws, nil
}
