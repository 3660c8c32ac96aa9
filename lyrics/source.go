package lyrics

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/config"
	"github.com/streambinder/lyrika/entity"
)

// Source looks lyrics up by song title and artist:
// a nil result with a nil error means nothing was found
type Source interface {
	Lookup(ctx context.Context, title, artist string) (*entity.Lyrics, error)
}

// Scraper finds lyrics pages and extracts their text
type Scraper interface {
	Find(ctx context.Context, query string) (string, error)
	FindBest(ctx context.Context, query, title, artist string) (string, error)
	Extract(ctx context.Context, url string) (string, error)
}

// NewSource returns a source scraping the lyrics site,
// or a mock one if the access token is missing
func NewSource(cfg config.GeniusConfig, log *logrus.Entry) Source {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if cfg.AccessToken == "" {
		log.Warn("access token not set, lyrics lookups will return mock data")
		return &mock{log}
	}
	return NewScrapedSource(NewGenius(cfg, log), log)
}
