// This file is part of go6502.
//
// go6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go6502.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences holds the preference values that affect the emulated
// hardware.
package preferences

import (
	"math/rand"
	"time"

	"github.com/fromthetransistor/go6502/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	// initialise registers to an unknown state after reset
	RandomState prefs.Bool

	// the seed used for RandSrc. setting this value reseeds RandSrc. a value
	// of zero means the seed is taken from the current time
	RandSeed prefs.Int

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand
}

func (p *Preferences) String() string {
	return "hardware.randstate::" + p.RandomState.String() + "; hardware.randseed::" + p.RandSeed.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values found in the most recent command line group of the prefs
// package are applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.RandSeed.SetHookPost(func(v prefs.Value) error {
		p.Reseed(v.(int64))
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	_, err = prefs.SetFromCommandLine("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	_, err = prefs.SetFromCommandLine("hardware.randseed", &p.RandSeed)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() error {
	err := p.RandomState.Set(false)
	if err != nil {
		return err
	}
	return p.RandSeed.Set(0)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p.RandSrc = rand.New(rand.NewSource(seed))
}
