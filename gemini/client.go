package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/config"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/util"
	"github.com/tidwall/gjson"
)

type client struct {
	endpoint string
	key      string
	http     *http.Client
	prompts  prompts
	log      *logrus.Entry
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

func newClient(cfg config.GeminiConfig, log *logrus.Entry) (*client, error) {
	prompts, err := parsePrompts(promptsYAML)
	if err != nil {
		return nil, err
	}
	return &client{
		endpoint: fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimSuffix(cfg.BaseURL, "/"), cfg.Model),
		key:      cfg.APIKey,
		http:     &http.Client{Timeout: config.Seconds(cfg.Timeout)},
		prompts:  prompts,
		log:      log,
	}, nil
}

func (api *client) Configured() bool {
	return true
}

func (api *client) GenerateLyrics(ctx context.Context, title, artist string) (*entity.Lyrics, error) {
	text, err := api.ask(ctx, promptLyrics, promptData{Title: title, Artist: artist})
	if err != nil {
		return nil, err
	}
	if unknown(text) {
		api.log.Warnf("no lyrics known for %q by %q", title, artist)
		return nil, fmt.Errorf("generate lyrics: %w", entity.ErrNotFound)
	}
	return &entity.Lyrics{
		Text:       tidy(text),
		Source:     entity.SourceGenerated,
		Formatting: entity.FormattingGenerative,
		Provider:   entity.ProviderGemini,
	}, nil
}

func (api *client) FormatLyrics(ctx context.Context, raw, title, artist string) (string, error) {
	text, err := api.ask(ctx, promptFormat, promptData{Title: title, Artist: artist, Lyrics: raw})
	if err != nil {
		return "", err
	}
	if !usableFormat(text) {
		return "", ErrUnusableFormat
	}
	return text, nil
}

func (api *client) Translate(ctx context.Context, lyrics, sourceLang, targetLang string) (*entity.Translation, error) {
	text, err := api.ask(ctx, promptTranslate, promptData{Lyrics: lyrics, Source: sourceLang, Target: targetLang})
	if err != nil {
		return nil, err
	}
	return &entity.Translation{
		Original:       lyrics,
		Translated:     tidy(text),
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
	}, nil
}

func (api *client) ExplainMeaning(ctx context.Context, title, artist, lyrics string) (*entity.Meaning, error) {
	text, err := api.ask(ctx, promptMeaning, promptData{Title: title, Artist: artist, Lyrics: lyrics})
	if err != nil {
		return nil, err
	}
	return &entity.Meaning{Title: title, Artist: artist, Text: text}, nil
}

func (api *client) RecommendSimilar(ctx context.Context, title, artist, lyrics string) (*entity.Recommendations, error) {
	text, err := api.ask(ctx, promptSimilar, promptData{Title: title, Artist: artist, Lyrics: preview(lyrics)})
	if err != nil {
		return nil, err
	}

	items, err := parseRecommendations(text)
	if err != nil {
		api.log.WithError(err).Error("cannot parse recommendations")
		return nil, err
	}
	return &entity.Recommendations{Title: title, Artist: artist, Items: items}, nil
}

// ask renders the named prompt and returns the model answer
func (api *client) ask(ctx context.Context, name string, data promptData) (string, error) {
	prompt, err := api.prompts.render(name, data)
	if err != nil {
		return "", fmt.Errorf("render %s prompt: %w", name, err)
	}

	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode %s request: %w", name, err)
	}

	api.log.Debugf("sending %s request", name)
	response, err := util.HttpRequest(ctx, api.http, http.MethodPost, api.endpoint,
		url.Values{"key": {api.key}}, bytes.NewReader(body), "Content-Type: application/json")
	if err != nil {
		api.log.WithError(err).Errorf("%s request failed", name)
		return "", entity.Transport(name, err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return "", entity.Transport(name, err)
	}

	if response.StatusCode != http.StatusOK {
		message := gjson.GetBytes(payload, "error.message").String()
		api.log.Errorf("%s request answered %s: %s", name, response.Status, message)
		return "", entity.Transport(name, errors.New(util.Ternary(message != "", message, response.Status)))
	}

	text := gjson.GetBytes(payload, "candidates.0.content.parts.0.text")
	if !text.Exists() || strings.TrimSpace(text.String()) == "" {
		return "", &entity.ParseError{Raw: string(payload), Err: errors.New("no candidate text")}
	}
	return strings.TrimSpace(text.String()), nil
}
