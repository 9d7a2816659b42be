// Package stats fetches playlists and aggregates the runtime of their videos.
package stats

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/osa030/playtime/internal/infra/youtube"
)

var (
	// ErrFetch marks any failure of the YouTube API collaborator.
	ErrFetch = errors.New("failed to fetch from YouTube")
	// ErrNoEntries is returned when an average is requested over zero videos.
	ErrNoEntries = errors.New("cannot average over zero videos")
)

// PlaylistSource defines the playlist operations needed by the Fetcher.
type PlaylistSource interface {
	ListPlaylistItems(ctx context.Context, playlistID string, maxResults int, pageToken string) (*youtube.PlaylistPage, error)
}

// DurationSource defines the video operations needed by the Aggregator.
type DurationSource interface {
	ListVideoDurations(ctx context.Context, videoIDs []string) (map[string]string, error)
}

// markFetch wraps err with msg and marks it as ErrFetch.
func markFetch(err error, msg string) error {
	return errors.Mark(errors.Wrap(err, msg), ErrFetch)
}
