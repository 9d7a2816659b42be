package stats

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playtime/internal/domain/playlist"
	"github.com/osa030/playtime/internal/infra/youtube"
)

// FetcherConfig controls paging.
type FetcherConfig struct {
	PageSize int // Items per request, 1..50
	MaxPages int // 0 reads every page
}

// Fetcher retrieves playlist snapshots.
type Fetcher struct {
	source PlaylistSource
	config FetcherConfig
}

// NewFetcher creates a new Fetcher.
func NewFetcher(source PlaylistSource, cfg FetcherConfig) *Fetcher {
	if cfg.PageSize <= 0 || cfg.PageSize > youtube.MaxPageSize {
		cfg.PageSize = youtube.MaxPageSize
	}
	if cfg.MaxPages < 0 {
		cfg.MaxPages = 0
	}
	return &Fetcher{source: source, config: cfg}
}

// Fetch retrieves the entries of a playlist, page by page, in order.
func (f *Fetcher) Fetch(ctx context.Context, playlistID string) (*playlist.Snapshot, error) {
	snapshot := &playlist.Snapshot{
		ID:      playlistID,
		Entries: []playlist.Entry{},
	}

	pageToken := ""
	for pages := 1; ; pages++ {
		page, err := f.source.ListPlaylistItems(ctx, playlistID, f.config.PageSize, pageToken)
		if err != nil {
			return nil, markFetch(err, "failed to fetch playlist items")
		}

		if pages == 1 {
			snapshot.DeclaredTotal = page.TotalResults
		}
		snapshot.Entries = append(snapshot.Entries, page.Entries...)
		zlog.Debug().Msgf("fetched page %d of playlist %s: %d entries", pages, playlistID, len(page.Entries))

		if page.NextPageToken == "" {
			break
		}
		if f.config.MaxPages > 0 && pages >= f.config.MaxPages {
			zlog.Warn().Msgf("stopped after %d pages; playlist %s has more entries", pages, playlistID)
			break
		}
		pageToken = page.NextPageToken
	}

	zlog.Info().Msgf("fetched playlist %s: %d entries (declared %d)", playlistID, snapshot.Len(), snapshot.DeclaredTotal)
	return snapshot, nil
}
