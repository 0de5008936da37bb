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

package host

import (
	"github.com/maikorhost/maikorhost/paths"
	"github.com/maikorhost/maikorhost/prefs"
)

// the name of the preferences file in the resource path
const prefsFile = "preferences"

// DefaultCycleBudget is the number of cycles in one work unit unless the
// host.cycleBudget preference says otherwise.
const DefaultCycleBudget = 100000

// Preferences defines and collates all the preference values used by the host.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of cycles in a work unit. the budget may be exceeded
	// by the last instruction of the work unit
	CycleBudget prefs.Int

	// the pixel layout of the buffer passed to Render(). one of ARGB or RGBA
	Layout prefs.String

	// the colour (0xRRGGBB) of the screen before anything is drawn
	FillColour prefs.Int

	// audio output. see audio.Backends for the list of values
	AudioBackend prefs.String

	// file used by the wav audio backend
	WAVFile prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := newPreferences()

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("host.cycleBudget", &p.CycleBudget)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("video.layout", &p.Layout)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("video.fillColor", &p.FillColour)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.backend", &p.AudioBackend)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.wavFile", &p.WAVFile)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// preferences with default values and no disk
func newPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all host preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.CycleBudget.Set(DefaultCycleBudget)
	_ = p.Layout.Set("RGBA")
	_ = p.FillColour.Set(0x000000)
	_ = p.AudioBackend.Set("sdl")
	_ = p.WAVFile.Set("")
}

// Load current host preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current host preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// budget returns the cycle budget. a work unit always runs at least one
// step so a budget of less than one is treated as one
func (p *Preferences) budget() uint {
	return uint(max(1, p.CycleBudget.Get().(int)))
}
