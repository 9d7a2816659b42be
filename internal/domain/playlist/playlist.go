// Package playlist provides the Playlist snapshot domain entity.
package playlist

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidWatchedCount is returned for a negative watched count.
	ErrInvalidWatchedCount = errors.New("watched count must not be negative")
	// ErrWatchedExceedsLength is returned when more videos are marked watched
	// than the playlist holds.
	ErrWatchedExceedsLength = errors.New("watched count exceeds playlist length")
)

// Entry is one item of a YouTube playlist.
type Entry struct {
	Position int    // Zero-based position in the playlist
	VideoID  string // YouTube video ID
	Title    string // Video title (may be empty)
}

// Snapshot is the ordered list of entries fetched for a playlist.
// A Snapshot is never modified once built; Remaining returns a new one.
type Snapshot struct {
	ID            string  // YouTube playlist ID
	DeclaredTotal int     // pageInfo.totalResults reported by the API
	Entries       []Entry // Entries in playlist order
}

// Len returns the number of entries actually held.
func (s *Snapshot) Len() int {
	return len(s.Entries)
}

// VideoIDs returns all video IDs in playlist order.
func (s *Snapshot) VideoIDs() []string {
	ids := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		ids[i] = e.VideoID
	}
	return ids
}

// Remaining returns a new snapshot without the first watched entries.
func (s *Snapshot) Remaining(watched int) (*Snapshot, error) {
	if watched < 0 {
		return nil, errors.Wrapf(ErrInvalidWatchedCount, "got %d", watched)
	}
	if watched > s.Len() {
		return nil, errors.Wrapf(ErrWatchedExceedsLength, "watched %d of %d", watched, s.Len())
	}

	entries := make([]Entry, s.Len()-watched)
	copy(entries, s.Entries[watched:])

	declared := s.DeclaredTotal - watched
	if declared < 0 {
		declared = 0
	}

	return &Snapshot{
		ID:            s.ID,
		DeclaredTotal: declared,
		Entries:       entries,
	}, nil
}
