package stats

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playtime/internal/domain/playlist"
	"github.com/osa030/playtime/internal/domain/video"
	"github.com/osa030/playtime/internal/infra/youtube"
)

// Aggregator sums the durations of the videos in a snapshot.
type Aggregator struct {
	source DurationSource
}

// NewAggregator creates a new Aggregator.
func NewAggregator(source DurationSource) *Aggregator {
	return &Aggregator{source: source}
}

// Durations looks up and parses the duration of every video in the snapshot.
// IDs are sent in batches of youtube.MaxPageSize, so a snapshot of up to 50
// entries costs a single request. The result follows playlist order; videos
// the API does not return are left out.
func (a *Aggregator) Durations(ctx context.Context, snapshot *playlist.Snapshot) ([]video.Duration, error) {
	ids := snapshot.VideoIDs()
	if len(ids) == 0 {
		return []video.Duration{}, nil
	}

	found := make([]string, 0, len(ids))
	raw := make([]string, 0, len(ids))
	for i := 0; i < len(ids); i += youtube.MaxPageSize {
		end := i + youtube.MaxPageSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[i:end]

		byID, err := a.source.ListVideoDurations(ctx, batch)
		if err != nil {
			return nil, markFetch(err, "failed to fetch video durations")
		}

		for _, id := range batch {
			d, ok := byID[id]
			if !ok {
				zlog.Warn().Msgf("no duration returned for video %s", id)
				continue
			}
			found = append(found, id)
			raw = append(raw, d)
		}
	}

	secs, err := video.ParseDurations(raw)
	if err != nil {
		return nil, err
	}

	durations := make([]video.Duration, len(secs))
	for i := range secs {
		durations[i] = video.Duration{VideoID: found[i], Raw: raw[i], Seconds: secs[i]}
	}
	return durations, nil
}

// TotalRuntime returns the summed runtime of the snapshot in seconds.
func (a *Aggregator) TotalRuntime(ctx context.Context, snapshot *playlist.Snapshot) (int, error) {
	durations, err := a.Durations(ctx, snapshot)
	if err != nil {
		return 0, err
	}

	secs := make([]int, len(durations))
	for i, d := range durations {
		secs[i] = d.Seconds
	}
	return Sum(secs), nil
}

// Sum adds up seconds.
func Sum(seconds []int) int {
	total := 0
	for _, s := range seconds {
		total += s
	}
	return total
}

// AverageRuntime returns totalSeconds/count formatted as H:MM:SS.
func AverageRuntime(totalSeconds, count int) (string, error) {
	if count <= 0 {
		return "", ErrNoEntries
	}
	return FormatDuration(float64(totalSeconds) / float64(count)), nil
}
