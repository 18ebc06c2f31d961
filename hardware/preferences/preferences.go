// This file is part of appleie.
//
// appleie is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// appleie is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with appleie.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences holds the configuration of the emulated machine. Values
// are stored on disk with the prefs package and can be overridden on the
// command line with the -prefs flag.
package preferences

import (
	"fmt"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware/memory/memorymap"
	"github.com/appleie/appleie/prefs"
	"github.com/appleie/appleie/resources"
)

// InvalidValue is the pattern of errors returned when a preference is set to
// a value that the machine can not use.
const InvalidValue = "preferences: %s: %v"

// Keys used in the preferences file.
const (
	KeyRAMSize = "memory.ramsize"
	KeyROM     = "memory.rom"
	KeyOrigin  = "machine.origin"
	KeyLimit   = "machine.limit"
)

// Preferences defines and collates all the preference values used by the
// machine.
type Preferences struct {
	dsk *prefs.Disk

	// size of RAM in bytes. RAM always begins at address zero
	RAMSize prefs.Int

	// filename of the ROM image. an empty string means that there is no ROM
	ROM prefs.String

	// address at which programs are loaded
	Origin prefs.Int

	// the maximum number of instructions executed by a single run. a value
	// of zero means there is no limit
	Limit prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resources
// directory.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.RAMSize.SetHookPre(func(v prefs.Value) error {
		sz := v.(int)
		if sz < memorymap.MinRAMSize || sz > memorymap.MaxRAMSize {
			return curated.Errorf(InvalidValue, KeyRAMSize,
				fmt.Sprintf("must be between %#x and %#x", memorymap.MinRAMSize, memorymap.MaxRAMSize))
		}
		return nil
	})

	p.Origin.SetHookPre(func(v prefs.Value) error {
		o := v.(int)
		if o < 0 || o > 0xffff {
			return curated.Errorf(InvalidValue, KeyOrigin, "must be a 16 bit address")
		}
		return nil
	})

	p.Limit.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(InvalidValue, KeyLimit, "must not be negative")
		}
		return nil
	})

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(KeyRAMSize, &p.RAMSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(KeyROM, &p.ROM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(KeyOrigin, &p.Origin)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(KeyLimit, &p.Limit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.RAMSize.Set(memorymap.DefaultRAMSize)
	p.ROM.Set("")
	p.Origin.Set(int(memorymap.DefaultOrigin))
	p.Limit.Set(0)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Set the preference value for the key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.dsk.Set(key, v)
}

// OriginAddress returns the origin preference as an address.
func (p *Preferences) OriginAddress() uint16 {
	return uint16(p.Origin.Get().(int))
}
