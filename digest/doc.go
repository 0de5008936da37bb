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

// Package digest produces cryptographic hashes of the output of the host. The
// hash can then be used to compare the output of subsequent executions. If a
// new hash differs from a previously recorded value then something has
// changed.
//
// Hashes are chained. The digest of a frame (or a block of audio) includes
// the digest of the previous frame, so a hash describes the entire history of
// the output and not just the most recent frame.
//
// The use of SHA-1 is fine for this application because this is not a
// cryptographic task.
package digest

// Digest implementations return the current hash value.
type Digest interface {
	Hash() string
	ResetDigest()
}
