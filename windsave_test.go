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
	"encoding/gob"
	"testing"
)

func TestSaveLoadWindsave(t *testing.T) {
	geo := NewDefaultGeometry()
	modes := NewDefaultModes()
	domains := []Domain{{CoordType: CoordImported, Ndim: 2, Mdim: 2}}
	cells := []WindCell{
		{R: 1e10, Theta: 30, Inwind: InWindTrue},
		{R: 2e10, Theta: 60, Inwind: Ignore},
	}

	var buf bytes.Buffer
	if err := SaveWindsave(&buf, geo, modes, domains, cells); err != nil {
		t.Fatalf("SaveWindsave: %v", err)
	}

	ws, err := LoadWindsave(&buf)
	if err != nil {
		t.Fatalf("LoadWindsave: %v", err)
	}

	if ws.Geo.Rstar != geo.Rstar || ws.Geo.Mstar != geo.Mstar {
		t.Errorf("geometry did not round-trip: got %+v, want %+v", ws.Geo, *geo)
	}
	if len(ws.Cells) != len(cells) {
		t.Fatalf("got %d cells, want %d", len(ws.Cells), len(cells))
	}
	for i := range cells {
		if ws.Cells[i].R != cells[i].R || ws.Cells[i].Inwind != cells[i].Inwind {
			t.Errorf("cell %d did not round-trip: got %+v, want %+v", i, ws.Cells[i], cells[i])
		}
	}
}

func TestSaveWindsave_RejectsEmptyCellArray(t *testing.T) {
	geo := NewDefaultGeometry()
	modes := NewDefaultModes()
	var buf bytes.Buffer
	if err := SaveWindsave(&buf, geo, modes, nil, nil); err == nil {
		t.Error("expected an error saving an empty cell array")
	}
}

func TestLoadWindsave_RejectsVersionMismatch(t *testing.T) {
	var buf bytes.Buffer
	ws := WindSave{DataVersion: "stale-version", Cells: []WindCell{{R: 1}}}
	if err := gob.NewEncoder(&buf).Encode(ws); err != nil {
		t.Fatalf("encoding test fixture: %v", err)
	}
	if _, err := LoadWindsave(&buf); err == nil {
		t.Error("expected a version-mismatch error")
	}
}
