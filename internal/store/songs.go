package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jaehwan-dev/maxdex/internal/domain"
)

// modeColumns maps each mode to its four variant-slot columns in slot
// order (NM, HD, MX, SC). Every level query is built from this table.
var modeColumns = map[domain.Mode][domain.NumSlots]string{
	domain.Mode4B: {"four_button_0", "four_button_1", "four_button_2", "four_button_3"},
	domain.Mode5B: {"five_button_0", "five_button_1", "five_button_2", "five_button_3"},
	domain.Mode6B: {"six_button_0", "six_button_1", "six_button_2", "six_button_3"},
	domain.Mode8B: {"eight_button_0", "eight_button_1", "eight_button_2", "eight_button_3"},
}

// GetSong returns the song with the given id, or (nil, nil) when no such
// song exists.
func (db *DB) GetSong(id int) (*domain.Song, error) {
	var song domain.Song
	err := db.Get(&song, `SELECT * FROM songs WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get song %d: %w", id, err)
	}
	return &song, nil
}

// UpsertSong inserts the song, or replaces every column of the existing
// row with the same id. The conflict check and the write are a single
// statement, so concurrent upserts on the same id cannot both insert.
func (db *DB) UpsertSong(song *domain.Song) (*domain.Song, error) {
	query := `INSERT INTO songs (
		id, title, artist, min_bpm, max_bpm, category, dlc,
		four_button_0, four_button_1, four_button_2, four_button_3,
		five_button_0, five_button_1, five_button_2, five_button_3,
		six_button_0, six_button_1, six_button_2, six_button_3,
		eight_button_0, eight_button_1, eight_button_2, eight_button_3
	) VALUES (
		:id, :title, :artist, :min_bpm, :max_bpm, :category, :dlc,
		:four_button_0, :four_button_1, :four_button_2, :four_button_3,
		:five_button_0, :five_button_1, :five_button_2, :five_button_3,
		:six_button_0, :six_button_1, :six_button_2, :six_button_3,
		:eight_button_0, :eight_button_1, :eight_button_2, :eight_button_3
	) ON CONFLICT(id) DO UPDATE SET
		title = excluded.title, artist = excluded.artist,
		min_bpm = excluded.min_bpm, max_bpm = excluded.max_bpm,
		category = excluded.category, dlc = excluded.dlc,
		four_button_0 = excluded.four_button_0, four_button_1 = excluded.four_button_1,
		four_button_2 = excluded.four_button_2, four_button_3 = excluded.four_button_3,
		five_button_0 = excluded.five_button_0, five_button_1 = excluded.five_button_1,
		five_button_2 = excluded.five_button_2, five_button_3 = excluded.five_button_3,
		six_button_0 = excluded.six_button_0, six_button_1 = excluded.six_button_1,
		six_button_2 = excluded.six_button_2, six_button_3 = excluded.six_button_3,
		eight_button_0 = excluded.eight_button_0, eight_button_1 = excluded.eight_button_1,
		eight_button_2 = excluded.eight_button_2, eight_button_3 = excluded.eight_button_3`

	if _, err := db.NamedExec(query, song); err != nil {
		return nil, fmt.Errorf("failed to upsert song %d: %w", song.ID, err)
	}
	return db.GetSong(song.ID)
}

// SongsByLevel returns the total number of songs that have a chart at
// the given level under the given mode, plus a window of them ordered by
// id so pagination is reproducible. An unknown mode matches nothing.
func (db *DB) SongsByLevel(mode domain.Mode, level, limit, offset int) (int, []domain.Song, error) {
	cols, ok := modeColumns[mode]
	if !ok {
		return 0, nil, nil
	}

	conds := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols)+2)
	for _, col := range cols {
		conds = append(conds, col+" = ?")
		args = append(args, level)
	}
	where := strings.Join(conds, " OR ")

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM songs WHERE `+where, args...); err != nil {
		return 0, nil, fmt.Errorf("failed to count songs by level: %w", err)
	}

	var songs []domain.Song
	query := `SELECT * FROM songs WHERE ` + where + ` ORDER BY id ASC LIMIT ? OFFSET ?`
	if err := db.Select(&songs, query, append(args, limit, offset)...); err != nil {
		return 0, nil, fmt.Errorf("failed to list songs by level: %w", err)
	}
	return count, songs, nil
}

// FirstSongByTitle returns the first song, in id order, whose title
// contains fragment. The fragment may carry % wildcards inserted by the
// caller. An empty fragment matches nothing rather than everything.
func (db *DB) FirstSongByTitle(fragment string) (*domain.Song, error) {
	if fragment == "" {
		return nil, nil
	}

	var song domain.Song
	err := db.Get(&song, `SELECT * FROM songs WHERE title LIKE ? ORDER BY id ASC LIMIT 1`, "%"+fragment+"%")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search songs by title: %w", err)
	}
	return &song, nil
}

// CountSongs returns the number of songs in the catalog.
func (db *DB) CountSongs() (int, error) {
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM songs`); err != nil {
		return 0, fmt.Errorf("failed to count songs: %w", err)
	}
	return count, nil
}
