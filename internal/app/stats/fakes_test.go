package stats

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/osa030/playtime/internal/infra/youtube"
)

// fakePlaylistSource serves pre-built pages keyed by page token.
type fakePlaylistSource struct {
	pages    map[string]*youtube.PlaylistPage
	err      error
	calls    int
	tokens   []string
	pageSize int
}

func (f *fakePlaylistSource) ListPlaylistItems(ctx context.Context, playlistID string, maxResults int, pageToken string) (*youtube.PlaylistPage, error) {
	f.calls++
	f.tokens = append(f.tokens, pageToken)
	f.pageSize = maxResults
	if f.err != nil {
		return nil, f.err
	}
	page, ok := f.pages[pageToken]
	if !ok {
		return nil, errors.Newf("unknown page token %q", pageToken)
	}
	return page, nil
}

// fakeDurationSource returns durations from a fixed table.
type fakeDurationSource struct {
	durations map[string]string
	err       error
	batches   [][]string
}

func (f *fakeDurationSource) ListVideoDurations(ctx context.Context, videoIDs []string) (map[string]string, error) {
	f.batches = append(f.batches, append([]string(nil), videoIDs...))
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[string]string, len(videoIDs))
	for _, id := range videoIDs {
		if d, ok := f.durations[id]; ok {
			result[id] = d
		}
	}
	return result, nil
}
