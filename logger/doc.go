// This file is part of maikorhost.
//
// maikorhost is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// maikorhost is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with maikorhost.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the application. Entries are
// tagged, usually with the name of the package making the entry:
//
//	logger.Logf(logger.Allow, "audio", "negotiated %dHz", rate)
//
// Repeated identical entries are folded into a single entry with a repeat
// count. The number of entries is bounded, the oldest entries being
// forgotten first.
//
// Entries are made through a Permission. Code that runs in a context where
// logging might not be wanted (a tight loop, a test harness) can supply a
// Permission that refuses. logger.Allow always permits logging.
//
// The log is safe to use from more than one goroutine. The audio worker logs
// from its own goroutine for example.
package logger
