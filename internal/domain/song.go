// Package domain contains the core catalog types shared by the store,
// services and handlers.
package domain

import (
	"strconv"
	"strings"
)

// Mode is one of the input-lane configurations a song can be played under.
type Mode int

const (
	Mode4B Mode = 4
	Mode5B Mode = 5
	Mode6B Mode = 6
	Mode8B Mode = 8
)

// Modes lists every playable mode in ascending lane order.
var Modes = []Mode{Mode4B, Mode5B, Mode6B, Mode8B}

// Valid reports whether m is a playable mode.
func (m Mode) Valid() bool {
	switch m {
	case Mode4B, Mode5B, Mode6B, Mode8B:
		return true
	}
	return false
}

func (m Mode) String() string {
	return strconv.Itoa(int(m)) + "B"
}

// NumSlots is the number of chart variant slots per mode.
const NumSlots = 4

// SlotLabels names the variant slots in slot order: normal, hard,
// maximum, special.
var SlotLabels = [NumSlots]string{"NM", "HD", "MX", "SC"}

// Song is one catalog record. The NM chart (slot 0) exists for every
// mode; HD/MX/SC slots are nil when the variant does not exist for the
// song, which is distinct from a level of zero.
type Song struct {
	ID       int      `json:"id" db:"id"`
	Title    string   `json:"title" db:"title"`
	Artist   string   `json:"artist" db:"artist"`
	MinBPM   *float64 `json:"minBpm,omitempty" db:"min_bpm"`
	MaxBPM   float64  `json:"maxBpm" db:"max_bpm"`
	Category string   `json:"category" db:"category"`
	DLC      *string  `json:"dlc,omitempty" db:"dlc"`

	FourButton0 int  `json:"4b0" db:"four_button_0"`
	FourButton1 *int `json:"4b1,omitempty" db:"four_button_1"`
	FourButton2 *int `json:"4b2,omitempty" db:"four_button_2"`
	FourButton3 *int `json:"4b3,omitempty" db:"four_button_3"`

	FiveButton0 int  `json:"5b0" db:"five_button_0"`
	FiveButton1 *int `json:"5b1,omitempty" db:"five_button_1"`
	FiveButton2 *int `json:"5b2,omitempty" db:"five_button_2"`
	FiveButton3 *int `json:"5b3,omitempty" db:"five_button_3"`

	SixButton0 int  `json:"6b0" db:"six_button_0"`
	SixButton1 *int `json:"6b1,omitempty" db:"six_button_1"`
	SixButton2 *int `json:"6b2,omitempty" db:"six_button_2"`
	SixButton3 *int `json:"6b3,omitempty" db:"six_button_3"`

	EightButton0 int  `json:"8b0" db:"eight_button_0"`
	EightButton1 *int `json:"8b1,omitempty" db:"eight_button_1"`
	EightButton2 *int `json:"8b2,omitempty" db:"eight_button_2"`
	EightButton3 *int `json:"8b3,omitempty" db:"eight_button_3"`
}

// Levels returns pointers to the four variant-slot levels of mode m in
// slot order. Slot 0 is always non-nil. An invalid mode yields four nils.
func (s *Song) Levels(m Mode) [NumSlots]*int {
	switch m {
	case Mode4B:
		return [NumSlots]*int{&s.FourButton0, s.FourButton1, s.FourButton2, s.FourButton3}
	case Mode5B:
		return [NumSlots]*int{&s.FiveButton0, s.FiveButton1, s.FiveButton2, s.FiveButton3}
	case Mode6B:
		return [NumSlots]*int{&s.SixButton0, s.SixButton1, s.SixButton2, s.SixButton3}
	case Mode8B:
		return [NumSlots]*int{&s.EightButton0, s.EightButton1, s.EightButton2, s.EightButton3}
	}
	return [NumSlots]*int{}
}

// SetLevels assigns the four variant-slot levels of mode m. levels[0]
// must be non-nil; an invalid mode or a nil slot 0 is ignored.
func (s *Song) SetLevels(m Mode, levels [NumSlots]*int) {
	if levels[0] == nil {
		return
	}
	switch m {
	case Mode4B:
		s.FourButton0, s.FourButton1, s.FourButton2, s.FourButton3 = *levels[0], levels[1], levels[2], levels[3]
	case Mode5B:
		s.FiveButton0, s.FiveButton1, s.FiveButton2, s.FiveButton3 = *levels[0], levels[1], levels[2], levels[3]
	case Mode6B:
		s.SixButton0, s.SixButton1, s.SixButton2, s.SixButton3 = *levels[0], levels[1], levels[2], levels[3]
	case Mode8B:
		s.EightButton0, s.EightButton1, s.EightButton2, s.EightButton3 = *levels[0], levels[1], levels[2], levels[3]
	}
}

// MatchedPatterns returns the labels of every variant slot of mode m
// whose level equals level. A song can match more than one slot at once.
func (s *Song) MatchedPatterns(m Mode, level int) []string {
	if !m.Valid() {
		return nil
	}
	var patterns []string
	for i, lv := range s.Levels(m) {
		if lv != nil && *lv == level {
			patterns = append(patterns, SlotLabels[i])
		}
	}
	return patterns
}

// BPMRange formats the tempo bounds as "min~max", or just "max" when no
// lower bound is recorded.
func (s *Song) BPMRange() string {
	var b strings.Builder
	if s.MinBPM != nil {
		b.WriteString(strconv.FormatFloat(*s.MinBPM, 'f', -1, 64))
		b.WriteString("~")
	}
	b.WriteString(strconv.FormatFloat(s.MaxBPM, 'f', -1, 64))
	return b.String()
}
