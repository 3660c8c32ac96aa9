package gemini

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

const (
	promptLyrics    = "lyrics"
	promptFormat    = "format"
	promptTranslate = "translate"
	promptMeaning   = "meaning"
	promptSimilar   = "similar"

	similarPreviewLines = 10
)

//go:embed prompts.yaml
var promptsYAML []byte

type promptData struct {
	Title  string
	Artist string
	Lyrics string
	Source string
	Target string
}

type prompts map[string]*template.Template

func parsePrompts(data []byte) (prompts, error) {
	var sources map[string]string
	if err := yaml.Unmarshal(data, &sources); err != nil {
		return nil, err
	}

	parsed := make(prompts, len(sources))
	for name, source := range sources {
		tmpl, err := template.New(name).Option("missingkey=error").Parse(source)
		if err != nil {
			return nil, fmt.Errorf("prompt %s: %w", name, err)
		}
		parsed[name] = tmpl
	}

	for _, name := range []string{promptLyrics, promptFormat, promptTranslate, promptMeaning, promptSimilar} {
		if parsed[name] == nil {
			return nil, fmt.Errorf("prompt %s not defined", name)
		}
	}
	return parsed, nil
}

func (p prompts) render(name string, data promptData) (string, error) {
	var builder strings.Builder
	if err := p[name].Execute(&builder, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(builder.String()), nil
}

// preview keeps the opening lines of the lyrics
func preview(lyrics string) string {
	lines := strings.Split(lyrics, "\n")
	if len(lines) > similarPreviewLines {
		lines = lines[:similarPreviewLines]
	}
	return strings.Join(lines, "\n")
}
