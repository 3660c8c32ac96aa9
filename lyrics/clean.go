package lyrics

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const maxCleanPasses = 8

type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

var (
	boilerplate = []substitution{
		{regexp.MustCompile(`(?s)\d+ Contributors.*?Read More`), ""},
		{regexp.MustCompile(`(?s)Translations.*?Lyrics`), ""},
		{regexp.MustCompile(`[\p{L}\p{M}\p{N}_ ]+ Lyrics`), ""},
		{regexp.MustCompile(`\[.*?\]`), ""},
		{regexp.MustCompile(`(?m)Embed$`), ""},
		{regexp.MustCompile(`(?m)Share URL$`), ""},
		{regexp.MustCompile(`(?m)Copy$`), ""},
	}
	layout = []substitution{
		{regexp.MustCompile(`([a-z])\s*\n\s*([a-z])`), "$1 $2"},
		{regexp.MustCompile(`([.,;:!?])\s*\n`), "$1\n"},
		{regexp.MustCompile(`([.,;:!?])\s*([A-Z])`), "$1\n$2"},
		{regexp.MustCompile(`\n{3,}`), "\n\n"},
	}
	multipleSpaces = regexp.MustCompile(` {2,}`)
)

// Clean strips page boilerplate from scraped lyrics and normalizes
// their layout; cleaning a cleaned text leaves it unchanged
func Clean(text string) string {
	for pass := 0; pass < maxCleanPasses; pass++ {
		cleaned := clean(text)
		if cleaned == text {
			break
		}
		text = cleaned
	}
	return text
}

func clean(text string) string {
	for _, step := range boilerplate {
		text = step.pattern.ReplaceAllString(text, step.replacement)
	}

	text = norm.NFC.String(strings.ReplaceAll(text, "\r\n", "\n"))
	for _, step := range layout {
		text = step.pattern.ReplaceAllString(text, step.replacement)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = multipleSpaces.ReplaceAllString(strings.Join(lines, "\n"), " ")

	return strings.TrimSpace(strings.Trim(text, "\n"))
}
