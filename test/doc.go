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

// Package test contains helper functions to remove common boilerplate from
// the tests of other packages.
//
// The Expect*() functions report a failed test but allow the test to
// continue. The Demand*() functions stop the test immediately and should be
// used when the value being tested is required by the rest of the test. For
// example, testing that the length of a buffer is correct before iterating
// over it.
//
// The ExpectSuccess() and ExpectFailure() functions interpret "success" and
// "failure" according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Note that an untyped nil is a success. This is because of how errors work
// in Go and how a nil error is passed through an interface.
package test
