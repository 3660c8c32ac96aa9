package lyrics

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/streambinder/lyrika/entity"
)

// thresholds observed to split lyrics pages from ranking and
// playlist pages, pending calibration against a larger corpus
const (
	minLength          = 100
	maxRankingTokens   = 3
	maxPlaylistEntries = 2
	maxPlaylistChain   = 2
	maxBareArtists     = 3
	maxTimestamps      = 3
	minShortLines      = 8
	minShortLineRatio  = 0.5
	maxShortLineLength = 79
)

const (
	RuleTooShort        = "too_short"
	RuleListPattern     = "list_pattern"
	RuleRankingTokens   = "ranking_tokens"
	RulePlaylistEntries = "playlist_entries"
	RulePlaylistChain   = "playlist_chain"
	RuleBareArtists     = "bare_artists"
	RuleTimestamps      = "timestamps"
	RuleShortLines      = "short_lines"
)

var (
	listPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)best (songs )?of \d{4}`),
		regexp.MustCompile(`(?i)top \d+ (songs|tracks|hits)`),
		regexp.MustCompile(`(?m)^#\d+:`),
		regexp.MustCompile(`(?i)honou?rable mentions?`),
		regexp.MustCompile(`(?i)ft\..*#\d+`),
	}
	rankingToken  = regexp.MustCompile(`#\d+`)
	playlistEntry = regexp.MustCompile(`(?m)^[^~\n]+ ~ [^~\n]+ \(\d{1,2}:\d{2}\)\s*$`)
	playlistChain = regexp.MustCompile(`\(\d{1,2}:\d{2}\)\s*,\s*[^,~\n]+ ~ `)
	bareArtist    = regexp.MustCompile(`(?m)^[A-Z][\w.'&-]*(?: [A-Z][\w.'&-]*){0,3},$`)
	timestamp     = regexp.MustCompile(`\(\d{1,2}:\d{2}\)`)
)

// Validate tells whether text looks like song lyrics rather than
// a ranking, a playlist or any other prose page
func Validate(text string) entity.Verdict {
	if utf8.RuneCountInString(text) < minLength {
		return entity.Reject(RuleTooShort)
	}

	for _, pattern := range listPatterns {
		if pattern.MatchString(text) {
			return entity.Reject(RuleListPattern)
		}
	}

	for _, check := range []struct {
		rule    string
		pattern *regexp.Regexp
		max     int
	}{
		{RuleRankingTokens, rankingToken, maxRankingTokens},
		{RulePlaylistEntries, playlistEntry, maxPlaylistEntries},
		{RulePlaylistChain, playlistChain, maxPlaylistChain},
		{RuleBareArtists, bareArtist, maxBareArtists},
		{RuleTimestamps, timestamp, maxTimestamps},
	} {
		if len(check.pattern.FindAllStringIndex(text, -1)) > check.max {
			return entity.Reject(check.rule)
		}
	}

	var lines, shortLines int
	for _, line := range strings.Split(text, "\n") {
		length := utf8.RuneCountInString(strings.TrimSpace(line))
		if length == 0 {
			continue
		}
		lines++
		if length <= maxShortLineLength {
			shortLines++
		}
	}
	if shortLines < minShortLines || float64(shortLines) < minShortLineRatio*float64(lines) {
		return entity.Reject(RuleShortLines)
	}

	return entity.Accept()
}

func IsPlausible(text string) bool {
	return Validate(text).Plausible
}
