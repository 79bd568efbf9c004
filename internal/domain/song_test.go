package domain

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestMode_Valid(t *testing.T) {
	for _, m := range Modes {
		if !m.Valid() {
			t.Errorf("Expected mode %v to be valid", m)
		}
	}
	for _, m := range []Mode{0, 1, 7, 9, -4} {
		if m.Valid() {
			t.Errorf("Expected mode %v to be invalid", m)
		}
	}
}

func TestSong_Levels(t *testing.T) {
	song := &Song{FourButton0: 12, FourButton1: intPtr(14)}

	levels := song.Levels(Mode4B)
	if levels[0] == nil || *levels[0] != 12 {
		t.Errorf("Expected slot 0 level 12, got %v", levels[0])
	}
	if levels[1] == nil || *levels[1] != 14 {
		t.Errorf("Expected slot 1 level 14, got %v", levels[1])
	}
	if levels[2] != nil || levels[3] != nil {
		t.Error("Expected slots 2 and 3 to be absent")
	}

	levels = song.Levels(Mode(7))
	for i, lv := range levels {
		if lv != nil {
			t.Errorf("Expected nil slot %d for invalid mode, got %v", i, *lv)
		}
	}
}

func TestSong_SetLevels(t *testing.T) {
	song := &Song{}
	song.SetLevels(Mode6B, [NumSlots]*int{intPtr(8), nil, intPtr(13), nil})

	if song.SixButton0 != 8 {
		t.Errorf("Expected 6B NM level 8, got %d", song.SixButton0)
	}
	if song.SixButton1 != nil {
		t.Error("Expected 6B HD to be absent")
	}
	if song.SixButton2 == nil || *song.SixButton2 != 13 {
		t.Errorf("Expected 6B MX level 13, got %v", song.SixButton2)
	}
}

func TestSong_MatchedPatterns(t *testing.T) {
	song := &Song{FourButton0: 12, FourButton1: intPtr(14)}

	tests := []struct {
		name  string
		mode  Mode
		level int
		want  []string
	}{
		{"hd match", Mode4B, 14, []string{"HD"}},
		{"nm match", Mode4B, 12, []string{"NM"}},
		{"no match", Mode4B, 5, nil},
		{"invalid mode", Mode(3), 12, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := song.MatchedPatterns(tt.mode, tt.level)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MatchedPatterns(%v, %d) = %v, want %v", tt.mode, tt.level, got, tt.want)
			}
		})
	}
}

func TestSong_MatchedPatterns_MultipleSlots(t *testing.T) {
	song := &Song{EightButton0: 10, EightButton1: intPtr(10), EightButton3: intPtr(10)}

	got := song.MatchedPatterns(Mode8B, 10)
	want := []string{"NM", "HD", "SC"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchedPatterns = %v, want %v", got, want)
	}
}

func TestSong_BPMRange(t *testing.T) {
	min := 88.0
	song := &Song{MinBPM: &min, MaxBPM: 176}
	if got := song.BPMRange(); got != "88~176" {
		t.Errorf("Expected BPM range 88~176, got %s", got)
	}

	song.MinBPM = nil
	if got := song.BPMRange(); got != "176" {
		t.Errorf("Expected BPM range 176, got %s", got)
	}
}
