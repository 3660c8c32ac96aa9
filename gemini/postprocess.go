package gemini

import (
	"errors"
	"regexp"
	"strings"

	"github.com/streambinder/lyrika/entity"
	"github.com/tidwall/gjson"
)

const minFormattedLength = 10

var (
	errInvalidJSON = errors.New("invalid JSON")
	errNotArray    = errors.New("JSON is not an array")

	sectionLabel    = regexp.MustCompile(`\[.*?\]`)
	enclosingQuotes = regexp.MustCompile(`(?s)^"(.*)"$`)
)

// tidy drops section labels and a single pair of enclosing quotes
func tidy(text string) string {
	text = sectionLabel.ReplaceAllString(strings.TrimSpace(text), "")
	return strings.TrimSpace(enclosingQuotes.ReplaceAllString(strings.TrimSpace(text), "$1"))
}

// unknown reports whether the model admitted not knowing the lyrics
func unknown(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "don't have") && strings.Contains(lower, "lyrics")
}

func usableFormat(text string) bool {
	return len(text) >= minFormattedLength && !strings.Contains(strings.ToLower(text), "error")
}

// extractJSON isolates the JSON payload the model may have wrapped
// in a fenced code block or surrounded with prose
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	switch {
	case strings.Contains(text, "```json"):
		text = strings.SplitN(text, "```json", 2)[1]
		text = strings.SplitN(text, "```", 2)[0]
	case strings.Contains(text, "```"):
		text = strings.Split(text, "```")[1]
	default:
		if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start >= 0 && end > start {
			text = text[start : end+1]
		}
	}
	return strings.TrimSpace(text)
}

func parseRecommendations(text string) ([]entity.Recommendation, error) {
	payload := extractJSON(text)
	if !gjson.Valid(payload) {
		return nil, &entity.ParseError{Raw: text, Err: errInvalidJSON}
	}

	parsed := gjson.Parse(payload)
	if !parsed.IsArray() {
		return nil, &entity.ParseError{Raw: text, Err: errNotArray}
	}

	recommendations := []entity.Recommendation{}
	parsed.ForEach(func(_, value gjson.Result) bool {
		recommendations = append(recommendations, entity.Recommendation{
			Title:  value.Get("title").String(),
			Artist: value.Get("artist").String(),
			Reason: value.Get("reason").String(),
			Year:   value.Get("year").String(),
		})
		return true
	})
	return recommendations, nil
}
