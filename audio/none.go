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

package audio

// None is a backend with no device. Samples are drained from the queue at
// the rate a real device would take them and are then discarded.
type None struct{}

func (n *None) String() string {
	return "none"
}

// Negotiate implements the Backend interface. The preferred rate is always
// accepted.
func (n *None) Negotiate(preferred int) (int, error) {
	return preferred, nil
}

// Open implements the Backend interface.
func (n *None) Open(rate int, fill FillFunc) (Stream, error) {
	return &noneStream{
		fill: fill,
		buf:  make([]float32, pumpFrames(rate)*2),
	}, nil
}

type noneStream struct {
	fill FillFunc
	buf  []float32
}

func (s *noneStream) Pump() error {
	s.fill(s.buf)
	return nil
}

func (s *noneStream) Close() error {
	return nil
}
