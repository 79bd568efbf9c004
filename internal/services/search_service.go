package services

import (
	"github.com/jaehwan-dev/maxdex/internal/constants"
	"github.com/jaehwan-dev/maxdex/internal/domain"
	"github.com/jaehwan-dev/maxdex/internal/store"
)

// SearchService answers the catalog's facet queries. It is stateless
// between calls; all coordination lives in the store.
type SearchService struct {
	Store *store.DB
}

func NewSearchService(st *store.DB) *SearchService {
	return &SearchService{Store: st}
}

// LevelMatch is one level-search hit, carrying the labels of every
// variant slot that matched the queried level.
type LevelMatch struct {
	domain.Song
	Patterns []string `json:"patterns"`
}

// LevelSearchResult is one page of a level search.
type LevelSearchResult struct {
	TotalCount int          `json:"total_count"`
	TotalPages int          `json:"total_pages"`
	Page       int          `json:"page"`
	Items      []LevelMatch `json:"items"`
}

// FindByID returns the song with the given id, or nil when absent.
func (s *SearchService) FindByID(id int) (*domain.Song, error) {
	return s.Store.GetSong(id)
}

// FindByTitle returns the first song, in id order, whose title contains
// fragment. An empty fragment never matches. Only the first match is
// exposed; callers wanting space-insensitive matching substitute
// wildcards into the fragment before calling.
func (s *SearchService) FindByTitle(fragment string) (*domain.Song, error) {
	return s.Store.FirstSongByTitle(fragment)
}

// FindByLevel returns the page-th window (25 songs per page, 1-based) of
// songs that chart at the given level under the given mode. An invalid
// mode or page is a domain violation, not a fault, and yields an empty
// result with a zero count.
func (s *SearchService) FindByLevel(mode domain.Mode, level, page int) (*LevelSearchResult, error) {
	if !mode.Valid() || page < 1 {
		return &LevelSearchResult{Page: page, Items: []LevelMatch{}}, nil
	}

	offset := constants.PageSize * (page - 1)
	count, songs, err := s.Store.SongsByLevel(mode, level, constants.PageSize, offset)
	if err != nil {
		return nil, err
	}

	items := make([]LevelMatch, 0, len(songs))
	for i := range songs {
		items = append(items, LevelMatch{
			Song:     songs[i],
			Patterns: songs[i].MatchedPatterns(mode, level),
		})
	}

	return &LevelSearchResult{
		TotalCount: count,
		TotalPages: (count + constants.PageSize - 1) / constants.PageSize,
		Page:       page,
		Items:      items,
	}, nil
}
