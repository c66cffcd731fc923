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

import "fmt"

// PhotonNotInGridError is returned by the photon repositioner when a
// photon cannot be resolved to any cell on entry (§7, recoverable
// transport anomaly). The photon's state is left unchanged; the
// caller may discard or retry it.
type PhotonNotInGridError struct {
	Code int // the negative code returned by WhereInGrid
}

func (e *PhotonNotInGridError) Error() string {
	return fmt.Sprintf("wind: photon not in grid when repositioning, code %d", e.Code)
}
