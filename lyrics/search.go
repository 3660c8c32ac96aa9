package lyrics

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/util"
)

type state int

const (
	stateSearching state = iota
	stateValidating
	stateRetrying
	stateExhausted
	stateFound
)

func (s state) String() string {
	switch s {
	case stateSearching:
		return "searching"
	case stateValidating:
		return "validating"
	case stateRetrying:
		return "retrying"
	case stateExhausted:
		return "exhausted"
	case stateFound:
		return "found"
	default:
		return "unknown"
	}
}

type scraped struct {
	scraper Scraper
	log     *logrus.Entry
}

// lookup holds the progress of a single lookup
type lookup struct {
	*scraped
	title   string
	artist  string
	url     string
	text    string
	retried bool
}

func NewScrapedSource(scraper Scraper, log *logrus.Entry) Source {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &scraped{scraper, log}
}

// Lookup searches for the lyrics page, validates what it holds and,
// if that does not look like lyrics, retries once with a narrower query
func (source *scraped) Lookup(ctx context.Context, title, artist string) (*entity.Lyrics, error) {
	progress := &lookup{scraped: source, title: title, artist: artist}
	for current := stateSearching; ; {
		if err := ctx.Err(); err != nil {
			return nil, entity.Transport("lyrics lookup", err)
		}

		next := progress.step(ctx, current)
		source.log.Tracef("%q: %s -> %s", title, current, next)
		switch next {
		case stateExhausted:
			return nil, nil
		case stateFound:
			return &entity.Lyrics{
				Text:       progress.text,
				SourceURL:  progress.url,
				Source:     entity.SourceScraped,
				Formatting: entity.FormattingBasic,
				Provider:   entity.ProviderGenius,
			}, nil
		}
		current = next
	}
}

func (lookup *lookup) step(ctx context.Context, current state) state {
	switch current {
	case stateSearching:
		return lookup.search(ctx)
	case stateValidating:
		return lookup.validate(ctx)
	case stateRetrying:
		return lookup.retry(ctx)
	default:
		return stateExhausted
	}
}

func (lookup *lookup) search(ctx context.Context) state {
	url, err := lookup.scraper.Find(ctx, strings.TrimSpace(fmt.Sprintf("%s %s", lookup.title, lookup.artist)))
	if err != nil {
		lookup.log.WithError(err).Warn("lyrics search failed")
	}
	if url == "" && lookup.artist != "" {
		if url, err = lookup.scraper.Find(ctx, lookup.title); err != nil {
			lookup.log.WithError(err).Warn("title-only lyrics search failed")
		}
	}
	if url == "" {
		return stateExhausted
	}
	lookup.url = url
	return stateValidating
}

func (lookup *lookup) validate(ctx context.Context) state {
	text, err := lookup.scraper.Extract(ctx, lookup.url)
	if err != nil {
		lookup.log.WithError(err).Warnf("cannot extract lyrics from %s", lookup.url)
	}

	verdict := Validate(text)
	if verdict.Plausible {
		lookup.text = text
		return stateFound
	}

	lookup.log.WithField("rule", verdict.Rule).Infof("%s does not hold lyrics (%s)", lookup.url, util.Excerpt(text, 40))
	if lookup.retried {
		return stateExhausted
	}
	return stateRetrying
}

func (lookup *lookup) retry(ctx context.Context) state {
	lookup.retried = true

	query := util.Transliterate(fmt.Sprintf("%s %s lyrics", lookup.title, lookup.artist))
	url, err := lookup.scraper.FindBest(ctx, query, lookup.title, lookup.artist)
	if err != nil {
		lookup.log.WithError(err).Warn("narrower lyrics search failed")
	}
	if url == "" || url == lookup.url {
		return stateExhausted
	}
	lookup.url = url
	return stateValidating
}
