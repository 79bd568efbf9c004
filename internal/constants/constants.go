// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

// Application defaults
const (
	DefaultPort      = "8080"
	DefaultDBPath    = "maxdex.db"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Pagination
const (
	// PageSize is the fixed window size for level searches.
	PageSize = 25
)

// Level bounds enforced at the front end, not by the store.
const (
	MinLevel = 1
	MaxLevel = 15
)
