// Package main provides the playtime CLI entry point.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playtime/internal/app/report"
	"github.com/osa030/playtime/internal/app/stats"
	"github.com/osa030/playtime/internal/domain/playlist"
	"github.com/osa030/playtime/internal/infra/config"
	"github.com/osa030/playtime/internal/infra/logger"
	"github.com/osa030/playtime/internal/infra/youtube"
)

var (
	app        = kingpin.New("playtime", "Report the runtime of a YouTube playlist")
	configPath = app.Flag("config", "Path to config file (optional)").Envar("PLAYTIME_CONFIG").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stderr)").String()

	// report command (default)
	reportCmd     = app.Command("report", "Report playlist runtime (default)").Default()
	reportURL     = reportCmd.Flag("url", "Playlist URL (prompted if omitted)").Short('u').String()
	reportWatched = reportCmd.Flag("watched", "Number of videos already watched (prompted if omitted)").Short('w').String()

	// extract command
	extractCmd = app.Command("extract", "Print the playlist ID of a URL and exit")
	extractURL = extractCmd.Arg("url", "Playlist URL").Required().String()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// Initialize logger from flags; config may refine it below
	closeLog, err := logger.Init(loggerConfig(nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Handle extract command
	if command == extractCmd.FullCommand() {
		id, err := youtube.ExtractPlaylistID(*extractURL)
		if err != nil {
			zlog.Error().Msgf("%v", err)
			os.Exit(1)
		}
		fmt.Println(id)
		return
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}
	_ = closeLog()
	closeLog, err = logger.Init(loggerConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tag every log line of this invocation
	zlog.Logger = zlog.With().Str("run_id", uuid.NewString()).Logger()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, *reportURL, *reportWatched); err != nil {
		zlog.Error().Msgf("%v", err)
		stop()
		_ = closeLog()
		os.Exit(1)
	}
}

// loggerConfig merges the command-line flags over the config file.
func loggerConfig(cfg *config.Config) logger.Config {
	lc := logger.Config{Output: "stderr", Level: "info"}
	if cfg != nil {
		lc.Output = cfg.Log.Output
		lc.Level = cfg.Log.Level
	}
	// Override with command-line flags if specified
	if *verbose {
		lc.Level = "debug"
	}
	if *logfile != "" {
		lc.Output = *logfile
	}
	return lc
}

// run executes one report: prompt for missing input, fetch, aggregate, print.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, playlistURL, watchedInput string) error {
	labels, err := report.DecodeLabels(cfg.Report.Labels)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "invalid report labels"), config.ErrInvalid)
	}

	reader := bufio.NewReader(in)
	if playlistURL == "" {
		if playlistURL, err = prompt(reader, out, "Enter playlist URL: "); err != nil {
			return err
		}
	}
	if watchedInput == "" {
		if watchedInput, err = prompt(reader, out, "Enter amount of videos watched: "); err != nil {
			return err
		}
	}

	watched, err := parseWatched(watchedInput)
	if err != nil {
		return err
	}

	playlistID, err := youtube.ExtractPlaylistID(playlistURL)
	if err != nil {
		return err
	}

	client, err := youtube.New(ctx, youtube.Config{
		APIKey:   cfg.YouTube.APIKey,
		Endpoint: cfg.YouTube.Endpoint,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create YouTube client")
	}

	fetcher := stats.NewFetcher(client, stats.FetcherConfig{
		PageSize: cfg.YouTube.PageSize,
		MaxPages: cfg.YouTube.MaxPages,
	})
	presenter := report.NewPresenter(out, stats.NewAggregator(client), labels)

	zlog.Info().Msgf("fetching playlist %s", youtube.PlaylistURL(playlistID))
	snapshot, err := fetcher.Fetch(ctx, playlistID)
	if err != nil {
		return err
	}

	if _, err := presenter.Run(ctx, snapshot, watched); err != nil {
		return err
	}
	return nil
}

// prompt writes label and reads one line of input.
func prompt(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(line), nil
}

// parseWatched parses the number of videos already watched.
func parseWatched(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "amount of videos watched must be a number, got %q", s)
	}
	if n < 0 {
		return 0, errors.Wrapf(playlist.ErrInvalidWatchedCount, "got %d", n)
	}
	return n, nil
}
