// Package report prints playlist runtime summaries.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playtime/internal/app/stats"
	"github.com/osa030/playtime/internal/domain/playlist"
)

// RuntimeCalculator sums the runtime of a snapshot in seconds.
type RuntimeCalculator interface {
	TotalRuntime(ctx context.Context, snapshot *playlist.Snapshot) (int, error)
}

// Report is the computed summary behind the printed lines.
type Report struct {
	Watched      int    // Videos skipped from the front
	Count        int    // Videos covered by the summary
	TotalSeconds int    // Runtime of those videos
	Total        string // TotalSeconds as H:MM:SS
	Average      string // Average runtime as H:MM:SS
}

// Presenter computes and prints reports.
type Presenter struct {
	out     io.Writer
	runtime RuntimeCalculator
	labels  Labels
}

// NewPresenter creates a new Presenter writing to out.
func NewPresenter(out io.Writer, runtime RuntimeCalculator, labels Labels) *Presenter {
	return &Presenter{out: out, runtime: runtime, labels: labels}
}

// Run prints the full report when watched is zero and the partial report
// otherwise.
func (p *Presenter) Run(ctx context.Context, snapshot *playlist.Snapshot, watched int) (*Report, error) {
	switch {
	case watched < 0:
		return nil, errors.Wrapf(playlist.ErrInvalidWatchedCount, "got %d", watched)
	case watched == 0:
		return p.PresentFull(ctx, snapshot)
	default:
		return p.PresentPartial(ctx, snapshot, watched)
	}
}

// PresentFull prints the summary of the whole playlist.
func (p *Presenter) PresentFull(ctx context.Context, snapshot *playlist.Snapshot) (*Report, error) {
	if snapshot.DeclaredTotal != snapshot.Len() {
		zlog.Warn().Msgf("playlist %s declares %d videos but %d were fetched; reporting %d",
			snapshot.ID, snapshot.DeclaredTotal, snapshot.Len(), snapshot.Len())
	}

	r, err := p.summarize(ctx, snapshot, 0)
	if err != nil {
		return nil, err
	}

	err = p.write(
		p.labels.NoneWatched+"\n",
		line(p.labels.TotalRuntime, r.Total),
		line(p.labels.AverageRuntime, r.Average),
		line(p.labels.Length, r.Count),
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// PresentPartial prints the summary of the videos left after skipping the
// first watched entries.
func (p *Presenter) PresentPartial(ctx context.Context, snapshot *playlist.Snapshot, watched int) (*Report, error) {
	remaining, err := snapshot.Remaining(watched)
	if err != nil {
		return nil, err
	}

	r, err := p.summarize(ctx, remaining, watched)
	if err != nil {
		return nil, err
	}

	err = p.write(
		line(p.labels.TimeLeft, r.Total),
		line(p.labels.AverageLeft, r.Average),
		line(p.labels.VideosLeft, r.Count),
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// summarize computes the report for snapshot. An empty snapshot has a zero
// average and issues no lookup.
func (p *Presenter) summarize(ctx context.Context, snapshot *playlist.Snapshot, watched int) (*Report, error) {
	r := &Report{
		Watched: watched,
		Count:   snapshot.Len(),
		Average: stats.FormatSeconds(0),
	}

	if r.Count > 0 {
		total, err := p.runtime.TotalRuntime(ctx, snapshot)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compute runtime of playlist %s", snapshot.ID)
		}
		r.TotalSeconds = total

		avg, err := stats.AverageRuntime(total, r.Count)
		if err != nil {
			return nil, err
		}
		r.Average = avg
	}
	r.Total = stats.FormatSeconds(r.TotalSeconds)

	zlog.Debug().Msgf("report: %+v", *r)
	return r, nil
}

func (p *Presenter) write(lines ...string) error {
	for _, l := range lines {
		if _, err := io.WriteString(p.out, l); err != nil {
			return errors.Wrap(err, "failed to write report")
		}
	}
	return nil
}

func line(label string, value any) string {
	return fmt.Sprintf("%s:  %v\n", label, value)
}
