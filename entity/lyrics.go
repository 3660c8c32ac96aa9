package entity

type (
	SourceKind     string
	FormattingKind string
)

const (
	SourceScraped   SourceKind = "scraped"
	SourceGenerated SourceKind = "generated"
	SourceMock      SourceKind = "mock"

	FormattingBasic      FormattingKind = "basic"
	FormattingGenerative FormattingKind = "generative"
	FormattingNone       FormattingKind = "none"

	ProviderGenius = "genius"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

type Lyrics struct {
	Text       string
	SourceURL  string
	Source     SourceKind
	Formatting FormattingKind
	Provider   string // service which produced Text
	Note       string
}

// WithFormatting returns a copy of the lyrics replacing the text
// with its formatted version
func (lyrics Lyrics) WithFormatting(text string, kind FormattingKind) *Lyrics {
	lyrics.Text = text
	lyrics.Formatting = kind
	return &lyrics
}

// LyricsSource reports the provenance tag exposed to clients
func LyricsSource(lyrics *Lyrics) string {
	if lyrics == nil || lyrics.Provider == "" {
		return ProviderNone
	}
	return lyrics.Provider
}

// FormattingTag reports the formatting tag exposed to clients:
// only generative formatting is distinguished from the basic cleanup
func FormattingTag(lyrics *Lyrics) string {
	if lyrics != nil && lyrics.Formatting == FormattingGenerative {
		return ProviderGemini
	}
	return string(FormattingBasic)
}
