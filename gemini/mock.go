package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/entity"
)

const (
	mockTranslationSpanish = `Esto es una traducción simulada
Para propósitos de desarrollo

Las letras reales serían traducidas
Por la API de Gemini en producción`
	mockTranslationFrench = `Ceci est une traduction simulée
À des fins de développement

Les paroles réelles seraient traduites
Par l'API Gemini en production`
	mockMeaning = `# Analysis of "%s" by %s

## Main Theme
This song explores themes of love, loss, and personal growth. It uses powerful imagery to convey the emotional journey of the protagonist.

## Cultural Context
Released during a time of significant social change, this song reflects the broader cultural shifts of its era. It resonated with audiences due to its authentic emotional expression.

## Hidden Meanings
The recurring metaphors of natural elements (water, fire, earth) represent the cycle of emotional transformation. The chorus symbolizes rebirth and renewal after a period of difficulty.

## Emotional Impact
The song creates a cathartic experience, allowing listeners to process their own feelings of loss while offering a sense of hope and resilience. Its emotional resonance is enhanced by the vocal delivery and instrumental arrangement.`
	mockLyrics = `This is a placeholder for lyrics
That would normally come from Genius
But since we couldn't find them there
Gemini would provide them in real use

These are mock lyrics for "%s"
By the artist known as "%s"
In production, we'd use Gemini
To get the actual song lyrics

The real implementation would
Connect to Google's powerful AI
To retrieve accurate lyrics
When Genius API falls short`
)

var mockRecommendations = []entity.Recommendation{
	{Title: "Bohemian Rhapsody", Artist: "Queen", Reason: "Epic composition with emotional depth and innovative structure", Year: "1975"},
	{Title: "November Rain", Artist: "Guns N' Roses", Reason: "Sweeping ballad with orchestral elements and emotional build", Year: "1991"},
	{Title: "Stairway to Heaven", Artist: "Led Zeppelin", Reason: "Progressive structure with philosophical lyrics and instrumental brilliance", Year: "1971"},
	{Title: "A Day in the Life", Artist: "The Beatles", Reason: "Experimental song structure with contrasting sections and orchestral climax", Year: "1967"},
	{Title: "Comfortably Numb", Artist: "Pink Floyd", Reason: "Atmospheric production with emotional vocals and legendary guitar work", Year: "1979"},
}

type mock struct {
	log *logrus.Entry
}

func (generator *mock) Configured() bool {
	return false
}

func (generator *mock) GenerateLyrics(_ context.Context, title, artist string) (*entity.Lyrics, error) {
	generator.log.Warnf("using mock lyrics for %q by %q", title, artist)
	return &entity.Lyrics{
		Text:       fmt.Sprintf(mockLyrics, title, artist),
		Source:     entity.SourceMock,
		Formatting: entity.FormattingNone,
		Provider:   entity.ProviderGemini,
		Note:       "These are mock lyrics for development",
	}, nil
}

func (generator *mock) FormatLyrics(context.Context, string, string, string) (string, error) {
	return "", ErrUnconfigured
}

func (generator *mock) Translate(_ context.Context, lyrics, _, targetLang string) (*entity.Translation, error) {
	generator.log.Warnf("using mock translation to %s", targetLang)
	translation := &entity.Translation{
		Original:       lyrics,
		Translated:     mockTranslationFrench,
		SourceLanguage: "English",
		TargetLanguage: targetLang,
		Mock:           true,
		Note:           "This is a mock translation for development",
	}
	if strings.EqualFold(targetLang, "spanish") {
		translation.Translated = mockTranslationSpanish
	}
	return translation, nil
}

func (generator *mock) ExplainMeaning(_ context.Context, title, artist, _ string) (*entity.Meaning, error) {
	generator.log.Warnf("using mock meaning for %q by %q", title, artist)
	return &entity.Meaning{
		Title:  title,
		Artist: artist,
		Text:   fmt.Sprintf(mockMeaning, title, artist),
		Mock:   true,
		Note:   "This is a mock analysis for development",
	}, nil
}

func (generator *mock) RecommendSimilar(_ context.Context, title, artist, _ string) (*entity.Recommendations, error) {
	generator.log.Warnf("using mock recommendations for %q by %q", title, artist)
	return &entity.Recommendations{
		Title:  title,
		Artist: artist,
		Items:  append([]entity.Recommendation{}, mockRecommendations...),
		Mock:   true,
		Note:   "These are mock recommendations for development",
	}, nil
}
