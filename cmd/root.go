package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/streambinder/lyrika/acrcloud"
	"github.com/streambinder/lyrika/audio"
	"github.com/streambinder/lyrika/config"
	"github.com/streambinder/lyrika/gemini"
	"github.com/streambinder/lyrika/lastfm"
	"github.com/streambinder/lyrika/logger"
	"github.com/streambinder/lyrika/lyrics"
	"github.com/streambinder/lyrika/pipeline"
	"github.com/streambinder/lyrika/spotify"
	"github.com/streambinder/lyrika/util"
)

var cmdRoot = &cobra.Command{
	Use:   "lyrika",
	Short: "Identify songs and relay their lyrics to the browser extension",
}

// components are the collaborators every command is built upon
type components struct {
	config   *config.Config
	logger   *logger.Logger
	status   gemini.Status
	pipeline *pipeline.Pipeline
}

func init() {
	cmdRoot.PersistentFlags().StringP("config", "c", "", "Path to the TOML configuration file")
	cmdRoot.PersistentFlags().String("log-level", "", "Logging level (trace, debug, info, warn, error)")
}

func Execute() {
	if err := util.ErrSuppress(cmdRoot.Execute(), context.Canceled); err != nil {
		os.Exit(1)
	}
}

func bootstrap(cmd *cobra.Command) (*components, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logConfig := cfg.GetLogConfig()
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		logConfig.Level = level
	}
	log, err := logger.Build(logConfig.Level, logConfig.File)
	if err != nil {
		return nil, err
	}

	generator, err := gemini.New(cfg.GetGeminiConfig(), log.Component("gemini"))
	if err != nil {
		return nil, err
	}

	var artwork []pipeline.ArtworkResolver
	if cfg.HasSpotifyConfig() {
		artwork = append(artwork, spotify.New(cfg.Spotify, log.Component("spotify")))
	}
	if cfg.HasLastfmConfig() {
		artwork = append(artwork, lastfm.New(cfg.Lastfm, log.Component("lastfm")))
	}

	return &components{
		config: cfg,
		logger: log,
		status: gemini.Describe(cfg.GetGeminiConfig()),
		pipeline: pipeline.New(
			acrcloud.New(cfg.GetACRCloudConfig(), log.Component("acrcloud"), audio.NewNormalizer(nil, log.Component("audio"))),
			lyrics.NewSource(cfg.GetGeniusConfig(), log.Component("genius")),
			generator,
			log.Component("pipeline"),
			cfg.FormatLyrics(),
			artwork...,
		),
	}, nil
}
