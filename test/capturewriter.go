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

package test

// CaptureWriter is an implementation of io.Writer that keeps everything
// written to it. Useful for capturing log output.
type CaptureWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (w *CaptureWriter) Write(p []byte) (n int, err error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (w *CaptureWriter) Clear() {
	w.buffer = w.buffer[:0]
}

// String implements the fmt.Stringer interface.
func (w *CaptureWriter) String() string {
	return string(w.buffer)
}
