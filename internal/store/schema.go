package store

const Schema = `
CREATE TABLE IF NOT EXISTS songs (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	artist TEXT NOT NULL,
	min_bpm REAL,
	max_bpm REAL NOT NULL,
	category TEXT NOT NULL,
	dlc TEXT,

	-- Chart levels per mode; slot 0 (NM) always exists, NULL elsewhere
	-- means the variant does not exist for the song
	four_button_0 INTEGER NOT NULL,
	four_button_1 INTEGER,
	four_button_2 INTEGER,
	four_button_3 INTEGER,

	five_button_0 INTEGER NOT NULL,
	five_button_1 INTEGER,
	five_button_2 INTEGER,
	five_button_3 INTEGER,

	six_button_0 INTEGER NOT NULL,
	six_button_1 INTEGER,
	six_button_2 INTEGER,
	six_button_3 INTEGER,

	eight_button_0 INTEGER NOT NULL,
	eight_button_1 INTEGER,
	eight_button_2 INTEGER,
	eight_button_3 INTEGER
);

CREATE INDEX IF NOT EXISTS idx_songs_title ON songs(title);
`
