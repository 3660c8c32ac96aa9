package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/pipeline"
	"github.com/stretchr/testify/assert"
)

func testAnnotate(args ...string) error {
	cmd := cmdAnnotate()
	return testExecute(cmd, args...)
}

func BenchmarkAnnotate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TestCmdAnnotateTranslate(&testing.T{})
	}
}

func TestCmdAnnotateTranslate(t *testing.T) {
	// monkey patching
	defer unconfigured().Reset()

	// testing
	assert.Nil(t, testAnnotate("translate", "--lyrics", "hello", "--target", "Spanish"))
}

func TestCmdAnnotateTranslateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyrics.txt")
	assert.Nil(t, os.WriteFile(path, []byte("hello"), 0o600))

	// monkey patching
	defer unconfigured().Reset()

	// testing
	assert.Nil(t, testAnnotate("translate", "--lyrics", "@"+path, "--target", "French"))
	assert.Error(t, testAnnotate("translate", "--lyrics", "@"+path+".missing", "--target", "French"))
}

func TestCmdAnnotateTranslateMissing(t *testing.T) {
	assert.EqualError(t, testAnnotate("translate", "--lyrics", "hello"), "lyrics and target language are required")
}

func TestCmdAnnotateTranslateFailure(t *testing.T) {
	// monkey patching
	defer unconfigured().
		ApplyMethod(&pipeline.Pipeline{}, "Translate", func() (*entity.Translation, error) {
			return nil, errors.New("ko")
		}).
		Reset()

	// testing
	assert.EqualError(t, testAnnotate("translate", "--lyrics", "hello", "--target", "Spanish"), "ko")
}

func TestCmdAnnotateMeaning(t *testing.T) {
	// monkey patching
	defer unconfigured().Reset()

	// testing
	assert.Nil(t, testAnnotate("meaning", "-t", "Bohemian Rhapsody", "-a", "Queen", "-l", "Is this the real life?"))
	assert.EqualError(t, testAnnotate("meaning", "-t", "Bohemian Rhapsody"), "title, artist and lyrics are required")
}

func TestCmdAnnotateMeaningFailure(t *testing.T) {
	// monkey patching
	defer unconfigured().
		ApplyMethod(&pipeline.Pipeline{}, "ExplainMeaning", func() (*entity.Meaning, error) {
			return nil, errors.New("ko")
		}).
		Reset()

	// testing
	assert.EqualError(t, testAnnotate("meaning", "-t", "Title", "-a", "Artist", "-l", "Lyrics"), "ko")
}

func TestCmdAnnotateSimilar(t *testing.T) {
	// monkey patching
	defer unconfigured().Reset()

	// testing
	assert.Nil(t, testAnnotate("similar", "-t", "Bohemian Rhapsody", "-a", "Queen", "-l", "Is this the real life?"))
	assert.EqualError(t, testAnnotate("similar", "-a", "Queen"), "title, artist and lyrics are required")
}

func TestCmdAnnotateSimilarFailure(t *testing.T) {
	// monkey patching
	defer unconfigured().
		ApplyMethod(&pipeline.Pipeline{}, "RecommendSimilar", func(*pipeline.Pipeline, context.Context, string, string, string) (*entity.Recommendations, error) {
			return nil, &entity.ParseError{Raw: "raw", Err: errors.New("invalid JSON")}
		}).
		Reset()

	// testing
	assert.Error(t, testAnnotate("similar", "-t", "Title", "-a", "Artist", "-l", "Lyrics"))
}
