package youtube

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidURL is returned when the URL does not point at YouTube.
	ErrInvalidURL = errors.New("invalid URL: not a YouTube address")
	// ErrNotAPlaylist is returned when a YouTube URL carries no playlist ID.
	ErrNotAPlaylist = errors.New("URL is not a playlist")
)

// hosts are the domains a playlist URL may use.
var hosts = []string{"youtube.com", "youtu.be"}

const listMarker = "list="

// ExtractPlaylistID extracts the playlist ID from a YouTube playlist URL.
// The ID is everything after "list=" up to the next '&'.
func ExtractPlaylistID(input string) (string, error) {
	input = strings.TrimSpace(input)

	if !hasKnownHost(input) {
		return "", errors.Wrapf(ErrInvalidURL, "%q", input)
	}

	idx := strings.Index(input, listMarker)
	if idx < 0 {
		return "", errors.Wrapf(ErrNotAPlaylist, "%q", input)
	}

	id := input[idx+len(listMarker):]
	if amp := strings.IndexByte(id, '&'); amp >= 0 {
		id = id[:amp]
	}
	if id == "" {
		return "", errors.Wrapf(ErrNotAPlaylist, "%q has an empty list parameter", input)
	}

	return id, nil
}

func hasKnownHost(input string) bool {
	for _, h := range hosts {
		if strings.Contains(input, h) {
			return true
		}
	}
	return false
}

// PlaylistURL returns the canonical URL for a playlist.
func PlaylistURL(playlistID string) string {
	return "https://www.youtube.com/playlist?list=" + playlistID
}
