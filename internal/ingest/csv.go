// Package ingest reads external catalog rows and maps them to songs.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jaehwan-dev/maxdex/internal/domain"
)

// requiredFields must appear in the CSV header. The per-mode NM column
// ({mode}b0) is required too; HD/MX/SC columns may be missing entirely
// or left empty on rows where the variant does not exist.
var requiredFields = []string{"id", "title", "artist", "maxBpm", "category"}

// CSVSource lazily yields songs from a CSV stream with a header row of
// named fields: id, title, artist, minBpm, maxBpm, category, dlc, and
// one column per mode/variant following the {mode}b{slot} convention
// (e.g. 4b0). The first malformed row aborts the whole read.
type CSVSource struct {
	r      *csv.Reader
	fields map[string]int
	row    int
}

func NewCSVSource(r io.Reader) (*CSVSource, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	fields := make(map[string]int, len(header))
	for i, name := range header {
		fields[name] = i
	}

	required := append([]string{}, requiredFields...)
	for _, m := range domain.Modes {
		required = append(required, fmt.Sprintf("%db0", int(m)))
	}
	for _, name := range required {
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("csv header is missing required field %q", name)
		}
	}

	return &CSVSource{r: cr, fields: fields, row: 1}, nil
}

// Next returns the next song, or io.EOF when the stream is exhausted.
func (s *CSVSource) Next() (*domain.Song, error) {
	rec, err := s.r.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	s.row++
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", s.row, err)
	}

	song := &domain.Song{}
	if song.ID, err = s.intField(rec, "id"); err != nil {
		return nil, err
	}
	if song.Title, err = s.strField(rec, "title"); err != nil {
		return nil, err
	}
	if song.Artist, err = s.strField(rec, "artist"); err != nil {
		return nil, err
	}
	if song.MinBPM, err = s.optFloatField(rec, "minBpm"); err != nil {
		return nil, err
	}
	if song.MaxBPM, err = s.floatField(rec, "maxBpm"); err != nil {
		return nil, err
	}
	if song.Category, err = s.strField(rec, "category"); err != nil {
		return nil, err
	}
	song.DLC = s.optStrField(rec, "dlc")

	if song.MinBPM != nil && *song.MinBPM > song.MaxBPM {
		return nil, s.rowError("minBpm", fmt.Errorf("lower bound %v exceeds maxBpm %v", *song.MinBPM, song.MaxBPM))
	}

	for _, m := range domain.Modes {
		var levels [domain.NumSlots]*int
		base, err := s.intField(rec, fmt.Sprintf("%db0", int(m)))
		if err != nil {
			return nil, err
		}
		levels[0] = &base
		for slot := 1; slot < domain.NumSlots; slot++ {
			levels[slot], err = s.optIntField(rec, fmt.Sprintf("%db%d", int(m), slot))
			if err != nil {
				return nil, err
			}
		}
		song.SetLevels(m, levels)
	}

	return song, nil
}

func (s *CSVSource) rowError(field string, err error) error {
	return fmt.Errorf("row %d: field %q: %w", s.row, field, err)
}

// cell returns the raw value of a named field, or "" when the column is
// absent from the header or the record is short.
func (s *CSVSource) cell(rec []string, name string) string {
	i, ok := s.fields[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func (s *CSVSource) strField(rec []string, name string) (string, error) {
	v := s.cell(rec, name)
	if v == "" {
		return "", s.rowError(name, fmt.Errorf("required field is empty"))
	}
	return v, nil
}

func (s *CSVSource) optStrField(rec []string, name string) *string {
	v := s.cell(rec, name)
	if v == "" {
		return nil
	}
	return &v
}

func (s *CSVSource) intField(rec []string, name string) (int, error) {
	v, err := s.strField(rec, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, s.rowError(name, err)
	}
	return n, nil
}

func (s *CSVSource) optIntField(rec []string, name string) (*int, error) {
	v := s.cell(rec, name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, s.rowError(name, err)
	}
	return &n, nil
}

func (s *CSVSource) floatField(rec []string, name string) (float64, error) {
	v, err := s.strField(rec, name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, s.rowError(name, err)
	}
	return f, nil
}

func (s *CSVSource) optFloatField(rec []string, name string) (*float64, error) {
	v := s.cell(rec, name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, s.rowError(name, err)
	}
	return &f, nil
}
