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

import "github.com/sirupsen/logrus"

// Logger is the package-wide logging sink. Library code never calls
// os.Exit or panic on a fatal condition; it returns an error and logs
// non-fatal diagnostics (boundary warnings, recoverable transport
// anomalies) through Logger. Only cmd/windtransport decides whether a
// returned error is fatal to the process.
//
// The -v verbosity flag (§6) is mapped onto Logger's level by
// SetVerbosity.
var Logger = logrus.StandardLogger()

// SetVerbosity maps the CLI's 1..5 verbosity scale onto a logrus level:
// 1 is the quietest (errors only); 4 and above both map to debug level,
// the most verbose.
func SetVerbosity(level int) {
	switch {
	case level <= 1:
		Logger.SetLevel(logrus.ErrorLevel)
	case level == 2:
		Logger.SetLevel(logrus.WarnLevel)
	case level == 3:
		Logger.SetLevel(logrus.InfoLevel)
	case level == 4:
		Logger.SetLevel(logrus.DebugLevel)
	default:
		Logger.SetLevel(logrus.DebugLevel)
	}
}
