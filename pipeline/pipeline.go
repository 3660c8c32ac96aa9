package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/acrcloud"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/gemini"
	"github.com/streambinder/lyrika/lyrics"
)

const artworkTimeout = 10 * time.Second

// ArtworkResolver looks up the album cover of a song,
// returning an empty URL if it does not know any
type ArtworkResolver interface {
	Artwork(ctx context.Context, song *entity.Song) (string, error)
}

type Pipeline struct {
	identifier acrcloud.Identifier
	source     lyrics.Source
	generator  gemini.Generator
	artwork    []ArtworkResolver
	format     bool
	timeout    time.Duration
	log        *logrus.Entry
}

// Resolution is the outcome of identifying a sample:
// lyrics are nil if nobody could provide them
type Resolution struct {
	Song         *entity.Song
	Lyrics       *entity.Lyrics
	LyricsSource string
	Formatting   string
}

func New(
	identifier acrcloud.Identifier,
	source lyrics.Source,
	generator gemini.Generator,
	log *logrus.Entry,
	format bool,
	artwork ...ArtworkResolver,
) *Pipeline {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Pipeline{identifier, source, generator, artwork, format, artworkTimeout, log}
}

// ResolveSongAndLyrics identifies the sample, enriches the match
// with its artwork and looks its lyrics up
func (pipeline *Pipeline) ResolveSongAndLyrics(ctx context.Context, sample entity.Sample) (*Resolution, error) {
	song, err := pipeline.identifier.Identify(ctx, sample)
	if err != nil {
		return nil, err
	}
	pipeline.log.Infof("identified %s", song)

	song = pipeline.enrich(ctx, song)
	found, err := pipeline.FetchLyrics(ctx, song.Title, song.Artist)
	switch {
	case err == nil, errors.Is(err, entity.ErrNotFound):
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, err
	default:
		pipeline.log.WithError(err).Errorf("cannot fetch lyrics for %s", song)
		found = nil
	}
	return &Resolution{
		Song:         song,
		Lyrics:       found,
		LyricsSource: entity.LyricsSource(found),
		Formatting:   entity.FormattingTag(found),
	}, nil
}

func (pipeline *Pipeline) enrich(ctx context.Context, song *entity.Song) *entity.Song {
	for _, resolver := range pipeline.artwork {
		if song.ArtworkURL != "" {
			break
		}

		resolverCtx, cancel := context.WithTimeout(ctx, pipeline.timeout)
		url, err := resolver.Artwork(resolverCtx, song)
		cancel()
		if err != nil {
			pipeline.log.WithError(err).Warnf("cannot resolve artwork for %s", song)
			continue
		}
		if url != "" {
			song = song.WithArtwork(url)
		}
	}
	return song
}

// FetchLyrics looks the lyrics up on the lyrics site, falling back
// to generative text, and formats scraped ones when enabled
func (pipeline *Pipeline) FetchLyrics(ctx context.Context, title, artist string) (*entity.Lyrics, error) {
	found, err := pipeline.source.Lookup(ctx, title, artist)
	if err != nil {
		return nil, err
	}

	if found == nil {
		pipeline.log.Infof("no valid lyrics scraped for %q, generating them", title)
		found, err = pipeline.generator.GenerateLyrics(ctx, title, artist)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, fmt.Errorf("lyrics for %q: %w", title, entity.ErrNotFound)
		}
		return found, nil
	}

	if found.Source != entity.SourceScraped || !pipeline.format {
		return found, nil
	}
	formatted, err := pipeline.generator.FormatLyrics(ctx, found.Text, title, artist)
	if err != nil {
		pipeline.log.WithError(err).Debug("keeping basic formatting")
		return found, nil
	}
	return found.WithFormatting(formatted, entity.FormattingGenerative), nil
}

func (pipeline *Pipeline) Translate(ctx context.Context, lyrics, sourceLang, targetLang string) (*entity.Translation, error) {
	return pipeline.generator.Translate(ctx, lyrics, sourceLang, targetLang)
}

func (pipeline *Pipeline) ExplainMeaning(ctx context.Context, title, artist, lyrics string) (*entity.Meaning, error) {
	return pipeline.generator.ExplainMeaning(ctx, title, artist, lyrics)
}

func (pipeline *Pipeline) RecommendSimilar(ctx context.Context, title, artist, lyrics string) (*entity.Recommendations, error) {
	return pipeline.generator.RecommendSimilar(ctx, title, artist, lyrics)
}
