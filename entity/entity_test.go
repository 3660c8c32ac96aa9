package entity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func BenchmarkEntity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TestSongQuery(&testing.T{})
		TestLyricsTags(&testing.T{})
	}
}

func TestSongQuery(t *testing.T) {
	assert.Equal(t, "Title Artist", (&Song{Title: "Title", Artist: "Artist"}).Query())
	assert.Equal(t, "Title", (&Song{Title: "Title"}).Query())
	assert.Equal(t, "Title by Artist", (&Song{Title: "Title", Artist: "Artist"}).String())
	assert.Equal(t, "Title", (&Song{Title: "Title"}).String())
}

func TestSongWithArtwork(t *testing.T) {
	song := &Song{Title: "Title"}
	enriched := song.WithArtwork("http://ima.ge")
	assert.Empty(t, song.ArtworkURL)
	assert.Equal(t, "http://ima.ge", enriched.ArtworkURL)
	assert.Equal(t, song.Title, enriched.Title)
}

func TestLyricsTags(t *testing.T) {
	assert.Equal(t, ProviderNone, LyricsSource(nil))
	assert.Equal(t, ProviderGenius, LyricsSource(&Lyrics{Provider: ProviderGenius}))
	assert.Equal(t, "basic", FormattingTag(nil))
	assert.Equal(t, "basic", FormattingTag(&Lyrics{Formatting: FormattingNone}))
	assert.Equal(t, "gemini", FormattingTag(&Lyrics{Formatting: FormattingGenerative}))
}

func TestLyricsWithFormatting(t *testing.T) {
	lyrics := &Lyrics{Text: "raw", Source: SourceScraped, Formatting: FormattingBasic}
	formatted := lyrics.WithFormatting("formatted", FormattingGenerative)
	assert.Equal(t, "raw", lyrics.Text)
	assert.Equal(t, "formatted", formatted.Text)
	assert.Equal(t, SourceScraped, formatted.Source)
}

func TestEncoding(t *testing.T) {
	assert.Equal(t, "bin", EncodingUnknown.Extension())
	assert.Equal(t, "m4a", EncodingMP4.Extension())
	assert.Equal(t, "wav", EncodingWAV.Extension())
	assert.Equal(t, "audio/webm", EncodingWebM.MimeType())
	assert.Equal(t, "application/octet-stream", Encoding("").MimeType())
}

func TestErrors(t *testing.T) {
	err := Transport("http request", context.DeadlineExceeded)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	var parseErr *ParseError
	err = &ParseError{Raw: "raw", Err: errors.New("ko")}
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "raw", parseErr.Raw)
	assert.EqualError(t, err, "cannot parse provider response: ko")
}

func TestVerdict(t *testing.T) {
	assert.True(t, Accept().Plausible)
	assert.Empty(t, Accept().Rule)
	assert.False(t, Reject("too_short").Plausible)
	assert.Equal(t, "too_short", Reject("too_short").Rule)
}
