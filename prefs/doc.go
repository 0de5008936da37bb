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

// Package prefs holds typed preference values and a Disk type that saves and
// loads groups of values to a file.
//
//	var budget prefs.Int
//	dsk, _ := prefs.NewDisk(path)
//	_ = dsk.Add("host.cycleBudget", &budget)
//	_ = dsk.Load()
//
// Each line of the file is a key/value pair separated by " :: ". Keys in the
// file that haven't been added to a Disk are preserved when the file is saved
// so that more than one Disk can share a file.
//
// Values can also be given on the command line. A string of the form
// "key::value; key::value" is pushed onto a stack with
// PushCommandLineStack(). Disk.Load() will then use the command line value in
// preference to the value on disk. Command line values are consumed as they
// are used.
package prefs
