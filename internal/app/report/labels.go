package report

import (
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"
)

// Labels holds the text printed in front of each report value.
type Labels struct {
	NoneWatched    string `mapstructure:"none_watched" default:"No videos watched" validate:"required"`
	TotalRuntime   string `mapstructure:"total_runtime" default:"Total playlist runtime" validate:"required"`
	AverageRuntime string `mapstructure:"average_runtime" default:"Average video runtime" validate:"required"`
	Length         string `mapstructure:"length" default:"Playlist length" validate:"required"`
	TimeLeft       string `mapstructure:"time_left" default:"Playlist time left" validate:"required"`
	AverageLeft    string `mapstructure:"average_left" default:"Average runtime of videos left" validate:"required"`
	VideosLeft     string `mapstructure:"videos_left" default:"Videos left" validate:"required"`
}

// DefaultLabels returns the built-in English labels.
func DefaultLabels() Labels {
	var labels Labels
	// defaults.Set only fails on non-pointer input.
	_ = defaults.Set(&labels)
	return labels
}

// DecodeLabels builds Labels from free-form settings. Missing keys keep
// their default text; unknown keys are rejected.
func DecodeLabels(settings map[string]any) (Labels, error) {
	var labels Labels

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &labels,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return Labels{}, errors.Wrap(err, "failed to create decoder")
	}

	if err := decoder.Decode(settings); err != nil {
		return Labels{}, errors.Wrap(err, "failed to decode labels")
	}

	if err := defaults.Set(&labels); err != nil {
		return Labels{}, errors.Wrap(err, "failed to set defaults")
	}

	if err := validator.New().Struct(labels); err != nil {
		return Labels{}, errors.Wrap(err, "validation failed")
	}

	zlog.Debug().Msgf("report labels: %+v", labels)
	return labels, nil
}
