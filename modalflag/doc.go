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

// Package modalflag wraps the flag package of the standard library to handle
// program modes. A mode is a command line argument that selects a different
// kind of operation, each with its own flags and arguments. For example:
//
//	maikorhost RUN -scale 3 game.bin
//	maikorhost SNAPSHOT -o frame.png dump.bin
//
// Arguments are given to NewArgs() and Parse() is called with no arguments.
// After a call to Parse(), Mode() returns the mode that was selected and the
// next layer of flags can be added after a call to NewMode():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SNAPSHOT", "VERSION")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 3, "window scale")
//		...
//	}
//
// The first sub-mode is the default, used when the first argument after the
// flags is not a listed mode. Mode comparisons are case insensitive.
//
// Help is printed to the Output writer when the -help flag is found and
// Parse() returns ParseHelp.
package modalflag
