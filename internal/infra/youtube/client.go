// Package youtube provides a client for the YouTube Data API v3.
package youtube

import (
	"context"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/osa030/playtime/internal/domain/playlist"
)

// MaxPageSize is the largest page the playlistItems and videos endpoints accept.
const MaxPageSize = 50

// Client is a YouTube Data API client.
type Client struct {
	service *yt.Service
}

// Config represents YouTube client configuration.
type Config struct {
	APIKey   string
	Endpoint string // Optional base URL override (tests, proxies)
}

// PlaylistPage is one page of playlist items.
type PlaylistPage struct {
	TotalResults  int              // pageInfo.totalResults
	Entries       []playlist.Entry // Entries on this page, in order
	NextPageToken string           // Empty on the last page
}

// New creates a new YouTube client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("youtube API key is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create youtube service")
	}

	return &Client{service: service}, nil
}

// ListPlaylistItems retrieves a single page of a playlist.
func (c *Client) ListPlaylistItems(ctx context.Context, playlistID string, maxResults int, pageToken string) (*PlaylistPage, error) {
	if maxResults <= 0 || maxResults > MaxPageSize {
		maxResults = MaxPageSize
	}

	call := c.service.PlaylistItems.
		List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(int64(maxResults)).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items of playlist %s", playlistID)
	}

	page := &PlaylistPage{
		Entries:       make([]playlist.Entry, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	if response.PageInfo != nil {
		page.TotalResults = int(response.PageInfo.TotalResults)
	}

	for _, item := range response.Items {
		entry := convertItem(item)
		if entry.VideoID == "" {
			zlog.Debug().Msgf("skipping playlist item without video id: %s", item.Id)
			continue
		}
		page.Entries = append(page.Entries, entry)
	}

	return page, nil
}

// ListVideoDurations retrieves the raw duration string of every given video
// in a single request. At most MaxPageSize IDs are accepted.
// Videos unknown to the API are absent from the result.
func (c *Client) ListVideoDurations(ctx context.Context, videoIDs []string) (map[string]string, error) {
	if len(videoIDs) == 0 {
		return map[string]string{}, nil
	}
	if len(videoIDs) > MaxPageSize {
		return nil, errors.Newf("at most %d video ids per request, got %d", MaxPageSize, len(videoIDs))
	}

	response, err := c.service.Videos.
		List([]string{"contentDetails"}).
		Id(videoIDs...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	durations := make(map[string]string, len(response.Items))
	for _, item := range response.Items {
		if item.ContentDetails == nil {
			continue
		}
		durations[item.Id] = item.ContentDetails.Duration
	}

	return durations, nil
}

// convertItem converts an API playlist item to a domain Entry.
func convertItem(item *yt.PlaylistItem) playlist.Entry {
	var entry playlist.Entry
	if item.ContentDetails != nil {
		entry.VideoID = item.ContentDetails.VideoId
	}
	if item.Snippet != nil {
		entry.Position = int(item.Snippet.Position)
		entry.Title = item.Snippet.Title
		if entry.VideoID == "" && item.Snippet.ResourceId != nil {
			entry.VideoID = item.Snippet.ResourceId.VideoId
		}
	}
	return entry
}
