package ingest

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jaehwan-dev/maxdex/internal/domain"
)

const csvHeader = "id,title,artist,minBpm,maxBpm,category,dlc," +
	"4b0,4b1,4b2,4b3,5b0,5b1,5b2,5b3,6b0,6b1,6b2,6b3,8b0,8b1,8b2,8b3"

func newSource(t *testing.T, rows ...string) *CSVSource {
	t.Helper()
	data := strings.Join(append([]string{csvHeader}, rows...), "\n")
	source, err := NewCSVSource(strings.NewReader(data))
	if err != nil {
		t.Fatalf("NewCSVSource failed: %v", err)
	}
	return source
}

func TestCSVSource_Next(t *testing.T) {
	source := newSource(t,
		"1,Rising,Composer,88,176,RESPECT,TRILOGY,12,14,,,8,,,,9,,,,10,,,15",
	)

	song, err := source.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if song.ID != 1 || song.Title != "Rising" || song.Artist != "Composer" {
		t.Errorf("Unexpected song fields: %+v", song)
	}
	if song.MinBPM == nil || *song.MinBPM != 88 || song.MaxBPM != 176 {
		t.Errorf("Unexpected BPM bounds: min %v max %v", song.MinBPM, song.MaxBPM)
	}
	if song.DLC == nil || *song.DLC != "TRILOGY" {
		t.Errorf("Expected DLC TRILOGY, got %v", song.DLC)
	}
	if song.FourButton0 != 12 {
		t.Errorf("Expected 4B NM level 12, got %d", song.FourButton0)
	}
	if song.FourButton1 == nil || *song.FourButton1 != 14 {
		t.Errorf("Expected 4B HD level 14, got %v", song.FourButton1)
	}
	if song.FourButton2 != nil || song.FourButton3 != nil {
		t.Error("Expected 4B MX/SC to be absent")
	}
	if song.EightButton3 == nil || *song.EightButton3 != 15 {
		t.Errorf("Expected 8B SC level 15, got %v", song.EightButton3)
	}

	if _, err := source.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF after last row, got %v", err)
	}
}

func TestCSVSource_OptionalScalarsAbsent(t *testing.T) {
	source := newSource(t,
		"2,Plain,Someone,,150,PORTABLE,,5,,,,5,,,,5,,,,5,,,",
	)

	song, err := source.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if song.MinBPM != nil {
		t.Errorf("Expected no lower BPM bound, got %v", *song.MinBPM)
	}
	if song.DLC != nil {
		t.Errorf("Expected no DLC, got %v", *song.DLC)
	}
}

func TestCSVSource_BadRowIsFatal(t *testing.T) {
	source := newSource(t,
		"1,Good,Someone,,150,RESPECT,,5,,,,5,,,,5,,,,5,,,",
		"2,Bad,Someone,,150,RESPECT,,oops,,,,5,,,,5,,,,5,,,",
	)

	if _, err := source.Next(); err != nil {
		t.Fatalf("Next failed on good row: %v", err)
	}

	_, err := source.Next()
	if err == nil {
		t.Fatal("Expected an error for the malformed row")
	}
	if !strings.Contains(err.Error(), "row 3") || !strings.Contains(err.Error(), `"4b0"`) {
		t.Errorf("Expected error naming row 3 and field 4b0, got %v", err)
	}
}

func TestCSVSource_MissingRequiredField(t *testing.T) {
	source := newSource(t,
		",NoID,Someone,,150,RESPECT,,5,,,,5,,,,5,,,,5,,,",
	)

	_, err := source.Next()
	if err == nil || !strings.Contains(err.Error(), `"id"`) {
		t.Errorf("Expected error naming field id, got %v", err)
	}
}

func TestCSVSource_BPMBoundsChecked(t *testing.T) {
	source := newSource(t,
		"1,Fast,Someone,200,150,RESPECT,,5,,,,5,,,,5,,,,5,,,",
	)

	_, err := source.Next()
	if err == nil || !strings.Contains(err.Error(), `"minBpm"`) {
		t.Errorf("Expected error naming field minBpm, got %v", err)
	}
}

func TestNewCSVSource_MissingHeaderColumn(t *testing.T) {
	header := "id,title,artist,minBpm,maxBpm,category,dlc,4b0,5b0,6b0"
	_, err := NewCSVSource(strings.NewReader(header))
	if err == nil || !strings.Contains(err.Error(), `"8b0"`) {
		t.Errorf("Expected error naming missing 8b0 column, got %v", err)
	}
}

func TestCSVSource_SlotsPerMode(t *testing.T) {
	source := newSource(t,
		"3,Spread,Someone,,150,RESPECT,,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,15",
	)

	song, err := source.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	for _, tt := range []struct {
		mode domain.Mode
		want [domain.NumSlots]int
	}{
		{domain.Mode4B, [domain.NumSlots]int{1, 2, 3, 4}},
		{domain.Mode5B, [domain.NumSlots]int{5, 6, 7, 8}},
		{domain.Mode6B, [domain.NumSlots]int{9, 10, 11, 12}},
		{domain.Mode8B, [domain.NumSlots]int{13, 14, 15, 15}},
	} {
		levels := song.Levels(tt.mode)
		for i, want := range tt.want {
			if levels[i] == nil || *levels[i] != want {
				t.Errorf("mode %v slot %d: expected %d, got %v", tt.mode, i, want, levels[i])
			}
		}
	}
}
