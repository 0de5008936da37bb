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

// Package audio carries sound from the interpreter's sound chip to an output
// device.
//
// The Bridge type is the meeting point of two threads. The emulation thread
// pushes stereo sample batches with Play() and the device pulls them with
// Fill(). The queue never holds more than one second of audio, so that the
// output resynchronises quickly after the emulation has been paused or has
// run ahead.
//
// Devices are reached through the Backend interface. The backends in this
// package are:
//
//	sdl        SDL2 queued audio device
//	oto        ebitengine/oto player
//	portaudio  PortAudio callback stream
//	wav        capture to a WAV file at real-time pace
//	none       real-time pump that discards everything
//
// Backends that pull samples on their own thread (oto, portaudio) call Fill()
// directly. Backends that must be pushed to (sdl, wav, none) return a stream
// that implements the Pumper interface and the Bridge's worker drives them
// with a ticker.
package audio
