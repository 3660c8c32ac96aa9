package gemini

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/config"
	"github.com/streambinder/lyrika/entity"
)

const (
	APIUsedGemini     = "gemini"
	APIUsedMock       = "mock_data"
	APIUsedParseError = "gemini_parse_error"
)

var (
	// ErrUnconfigured is returned by operations the mock client cannot fake
	ErrUnconfigured = errors.New("generative text service not configured")
	// ErrUnusableFormat is returned when formatted lyrics look broken
	ErrUnusableFormat = errors.New("formatted lyrics are unusable")
)

type Generator interface {
	GenerateLyrics(ctx context.Context, title, artist string) (*entity.Lyrics, error)
	FormatLyrics(ctx context.Context, raw, title, artist string) (string, error)
	Translate(ctx context.Context, lyrics, sourceLang, targetLang string) (*entity.Translation, error)
	ExplainMeaning(ctx context.Context, title, artist, lyrics string) (*entity.Meaning, error)
	RecommendSimilar(ctx context.Context, title, artist, lyrics string) (*entity.Recommendations, error)
	Configured() bool
}

// Status describes the generative text configuration without leaking the key
type Status struct {
	Configured bool
	Model      string
	KeyPresent bool
	KeyLength  int
	KeyPrefix  string
}

// New returns a client of the generative text service,
// or a mock one if the API key is missing
func New(cfg config.GeminiConfig, log *logrus.Entry) (Generator, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if cfg.APIKey == "" {
		log.Warn("API key not set, generative features will return mock data")
		return &mock{log}, nil
	}
	return newClient(cfg, log)
}

func Describe(cfg config.GeminiConfig) Status {
	status := Status{
		Configured: cfg.APIKey != "",
		Model:      cfg.Model,
		KeyPresent: cfg.APIKey != "",
		KeyLength:  len(cfg.APIKey),
	}
	if status.Configured {
		status.KeyPrefix = cfg.APIKey[:min(4, len(cfg.APIKey))] + "..."
	}
	return status
}

func (status Status) Tag() string {
	if status.Configured {
		return "configured"
	}
	return "not configured"
}

// APIUsed tags the outcome of a generative operation for clients
func APIUsed(mock bool, err error) string {
	var parseErr *entity.ParseError
	switch {
	case errors.As(err, &parseErr):
		return APIUsedParseError
	case mock:
		return APIUsedMock
	default:
		return APIUsedGemini
	}
}
